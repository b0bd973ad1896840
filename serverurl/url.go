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

// Package serverurl parses the server addresses a messaging client is
// configured with into the descriptor consumed by the server pool.
package serverurl

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultScheme is applied when an address carries no scheme of its own.
	DefaultScheme = "nats"

	// DefaultPort is applied when an address carries no port of its own.
	DefaultPort = 4222

	_defaultHost = "localhost"
)

// URL is one parsed server address. The address is parsed once at creation
// and never mutated afterwards.
type URL struct {
	Scheme   string
	Username string
	Password string
	Host     string
	Port     int
}

// Parse builds a URL from a raw address string. Addresses without a scheme
// get DefaultScheme, addresses without a port get DefaultPort, and an empty
// host becomes localhost. Malformed input yields ErrInvalidURL.
func Parse(raw string) (*URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrInvalidURL{URL: raw, Reason: "empty address"}
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = DefaultScheme + "://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, ErrInvalidURL{URL: raw, Reason: err.Error()}
	}
	if parsed.Opaque != "" || (parsed.Path != "" && parsed.Path != "/") || parsed.RawQuery != "" {
		return nil, ErrInvalidURL{URL: raw, Reason: "address must be host:port only"}
	}

	host := parsed.Hostname()
	if host == "" {
		host = _defaultHost
	}

	port := DefaultPort
	if p := parsed.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return nil, ErrInvalidURL{URL: raw, Reason: fmt.Sprintf("invalid port %q", p)}
		}
	}

	u := &URL{
		Scheme: parsed.Scheme,
		Host:   host,
		Port:   port,
	}
	if parsed.User != nil {
		u.Username = parsed.User.Username()
		u.Password, _ = parsed.User.Password()
	}
	return u, nil
}

// HostPort returns the normalized host:port form of the URL, independent of
// scheme decoration and credentials. It is the deduplication key used by the
// server pool.
func (u *URL) HostPort() string {
	return net.JoinHostPort(u.Host, strconv.Itoa(u.Port))
}

// String reassembles the full URL, credentials included.
func (u *URL) String() string {
	return u.assemble(u.Password)
}

// Redacted reassembles the full URL with the password masked, suitable for
// logging.
func (u *URL) Redacted() string {
	if u.Password == "" {
		return u.assemble("")
	}
	return u.assemble("xxxxx")
}

func (u *URL) assemble(password string) string {
	var sb strings.Builder
	sb.WriteString(u.Scheme)
	sb.WriteString("://")
	if u.Username != "" {
		sb.WriteString(u.Username)
		if password != "" {
			sb.WriteString(":")
			sb.WriteString(password)
		}
		sb.WriteString("@")
	}
	sb.WriteString(u.HostPort())
	return sb.String()
}
