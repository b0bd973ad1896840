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

package serverpool

import (
	"go.uber.org/atomic"

	"github.com/phigoro/cnats/serverurl"
)

// NewServer creates a Server from a raw address string, failing with
// serverurl.ErrInvalidURL if the address is malformed.
func NewServer(raw string) (*Server, error) {
	u, err := serverurl.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &Server{url: u}, nil
}

// Server is one candidate server: an immutable address plus the count of
// failed connection attempts recorded against it.
//
// Identity is pointer identity. Two Servers parsed from equal text are
// distinct entries and are never confused by the pool.
type Server struct {
	url        *serverurl.URL
	reconnects atomic.Uint32
}

// URL returns the server's parsed address.
func (s *Server) URL() *serverurl.URL {
	return s.url
}

// HostPort returns the normalized host:port the pool uses as this server's
// deduplication key.
func (s *Server) HostPort() string {
	return s.url.HostPort()
}

// Reconnects returns the number of failed connection attempts recorded
// against this server.
func (s *Server) Reconnects() int {
	return int(s.reconnects.Load())
}

// IncReconnects records one failed connection attempt. It is called by the
// connection layer after a dial to this server fails.
func (s *Server) IncReconnects() {
	s.reconnects.Inc()
}

// ResetReconnects zeroes the failure count. It is called by the connection
// layer after a connection to this server succeeds.
func (s *Server) ResetReconnects() {
	s.reconnects.Store(0)
}
