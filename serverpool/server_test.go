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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phigoro/cnats/serverurl"
)

func TestNewServer(t *testing.T) {
	s, err := NewServer("nats://demo.example.com:4443")
	require.NoError(t, err)

	assert.Equal(t, "demo.example.com:4443", s.HostPort())
	assert.Equal(t, "nats", s.URL().Scheme)
	assert.Equal(t, 0, s.Reconnects())
}

func TestNewServerInvalidAddress(t *testing.T) {
	s, err := NewServer("nats://demo.example.com:0")
	require.Error(t, err)
	assert.IsType(t, serverurl.ErrInvalidURL{}, err)
	assert.Nil(t, s)
}

func TestServerReconnectCounter(t *testing.T) {
	s, err := NewServer("demo.example.com:4222")
	require.NoError(t, err)

	s.IncReconnects()
	s.IncReconnects()
	assert.Equal(t, 2, s.Reconnects())

	s.ResetReconnects()
	assert.Equal(t, 0, s.Reconnects())
}
