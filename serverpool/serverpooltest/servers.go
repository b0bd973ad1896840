// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package serverpooltest

import "github.com/phigoro/cnats/serverpool"

// HostPorts maps a slice of servers to their normalized host:port keys,
// preserving order.
func HostPorts(servers []*serverpool.Server) []string {
	hostPorts := make([]string, len(servers))
	for i, s := range servers {
		hostPorts[i] = s.HostPort()
	}
	return hostPorts
}

// FailConnects records n failed connection attempts against a server, the
// way the connection layer would after n failed dials.
func FailConnects(s *serverpool.Server, n int) {
	for i := 0; i < n; i++ {
		s.IncReconnects()
	}
}
