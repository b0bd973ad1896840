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

// Package serverpool maintains the ordered, deduplicated set of candidate
// servers a messaging client connects to, and the rotation policy that
// decides which server to try next after a disconnect.
package serverpool

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/phigoro/cnats/serverurl"
)

// DefaultURL is admitted when construction would otherwise yield an empty
// pool.
const DefaultURL = "nats://localhost:4222"

// New creates a server pool from the given options.
//
// The primary URL is admitted first, then each additional server in the
// listed order, deduplicating on the normalized host:port. A malformed
// address fails the whole construction; no partial pool is returned. Unless
// shuffling is disabled the admitted servers are shuffled once, and if the
// configuration yielded no servers at all, DefaultURL is admitted so the
// pool is never empty.
func New(opts ...Option) (*Pool, error) {
	options := defaultOptions
	for _, o := range opts {
		o.apply(&options)
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	capacity := options.capacity
	if capacity <= 0 {
		capacity = len(options.servers)
		if options.url != "" {
			capacity++
		}
		if capacity == 0 {
			capacity = 1
		}
	}

	p := &Pool{
		servers:     make([]*Server, 0, capacity),
		known:       make(map[string]struct{}, capacity),
		subscribers: make(map[Subscriber]struct{}),
		randSrc:     rand.NewSource(options.seed),
		logger:      logger,
	}
	p.metrics = newPoolMetrics(options.meter, logger)

	if options.url != "" {
		if _, err := p.admit(options.url); err != nil {
			return nil, err
		}
	}
	for _, raw := range options.servers {
		if _, err := p.admit(raw); err != nil {
			return nil, err
		}
	}

	if !options.noShuffle {
		p.shuffle()
	}

	if len(p.servers) == 0 {
		if _, err := p.admit(DefaultURL); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Pool is the ordered, deduplicated collection of candidate servers. The
// server at index 0 is always the one to try next.
//
// The pool is not internally synchronized: it is designed to be driven by
// the single control loop that owns the client's connection state. Callers
// needing concurrent access must hold one exclusive lock across every
// lookup, rotation, merge, and close.
type Pool struct {
	servers     []*Server
	known       map[string]struct{}
	subscribers map[Subscriber]struct{}
	randSrc     rand.Source
	logger      *zap.Logger
	metrics     poolMetrics
}

// admit parses raw and appends the resulting server unless its normalized
// host:port is already known. It reports whether a server was added.
func (p *Pool) admit(raw string) (bool, error) {
	srv, err := NewServer(raw)
	if err != nil {
		return false, err
	}

	key := srv.HostPort()
	if _, ok := p.known[key]; ok {
		p.logger.Debug("skipping known server", zap.String("hostPort", key))
		return false, nil
	}

	p.known[key] = struct{}{}
	p.servers = append(p.servers, srv)
	p.logger.Debug("admitted server", zap.String("url", srv.URL().Redacted()))
	return true, nil
}

// Lookup finds a server by identity, returning it with its position, or
// (nil, -1) if the pool does not hold this exact server. Comparison is by
// pointer, never by address text.
func (p *Pool) Lookup(target *Server) (*Server, int) {
	for i, s := range p.servers {
		if s == target {
			return s, i
		}
	}
	return nil, -1
}

// Next implements round-robin rotation with bounded retries. It removes
// current from its slot, keeping the relative order of the remaining
// servers, then either re-appends it at the tail (when maxReconnect is
// negative, meaning unlimited, or its failure count is still below
// maxReconnect) or evicts it permanently. It returns the server now at the
// front, or nil when current is not in the pool or no servers remain.
func (p *Pool) Next(maxReconnect int, current *Server) *Server {
	s, i := p.Lookup(current)
	if i < 0 {
		return nil
	}

	copy(p.servers[i:], p.servers[i+1:])

	if maxReconnect < 0 || s.Reconnects() < maxReconnect {
		p.servers[len(p.servers)-1] = s
		p.metrics.rotations.Inc()
	} else {
		p.servers[len(p.servers)-1] = nil
		p.servers = p.servers[:len(p.servers)-1]
		delete(p.known, s.HostPort())
		p.metrics.evictions.Inc()
		p.logger.Debug("evicted server",
			zap.String("url", s.URL().Redacted()),
			zap.Int("reconnects", s.Reconnects()))
	}

	if len(p.servers) == 0 {
		return nil
	}
	return p.servers[0]
}

// Merge folds a list of discovered bare host:port addresses into the pool.
// Addresses already known are silently skipped; new ones get the default
// scheme prefix and are admitted as in construction. A malformed address
// fails the call but addresses admitted before it are retained. When at
// least one address was admitted, the pool is reshuffled if shuffle is set
// and subscribers are notified of the new URLs.
func (p *Pool) Merge(urls []string, shuffle bool) error {
	var added []string
	for _, hostPort := range urls {
		if _, ok := p.known[hostPort]; ok {
			p.metrics.mergeDuplicates.Inc()
			continue
		}

		raw := serverurl.DefaultScheme + "://" + hostPort
		ok, err := p.admit(raw)
		if err != nil {
			return err
		}
		if ok {
			p.metrics.mergeAdmissions.Inc()
			added = append(added, raw)
		} else {
			p.metrics.mergeDuplicates.Inc()
		}
	}

	if len(added) == 0 {
		return nil
	}

	p.logger.Debug("merged discovered servers", zap.Int("admitted", len(added)))
	if shuffle {
		p.shuffle()
	}
	for sub := range p.subscribers {
		sub.NotifyServersDiscovered(added)
	}
	return nil
}

// shuffle randomizes the order of the pool's servers in place.
// see: https://en.wikipedia.org/wiki/Fisher-Yates_shuffle
func (p *Pool) shuffle() {
	if len(p.servers) <= 1 {
		return
	}
	r := rand.New(p.randSrc)
	for i := len(p.servers) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p.servers[i], p.servers[j] = p.servers[j], p.servers[i]
	}
}

// Servers returns a snapshot of the pool's servers in their current order.
func (p *Pool) Servers() []*Server {
	servers := make([]*Server, len(p.servers))
	copy(servers, p.servers)
	return servers
}

// Len returns the number of servers currently in the pool.
func (p *Pool) Len() int {
	return len(p.servers)
}

// Close releases every remaining server and the pool's indexes. It is safe
// to call on a nil pool and safe to call more than once.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	for i := range p.servers {
		p.servers[i] = nil
	}
	p.servers = nil
	p.known = nil
	p.subscribers = nil
}
