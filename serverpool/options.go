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
	"time"

	"go.uber.org/net/metrics"
	"go.uber.org/zap"
)

type options struct {
	url       string
	servers   []string
	noShuffle bool
	seed      int64
	capacity  int
	logger    *zap.Logger
	meter     *metrics.Scope
}

var defaultOptions = options{
	seed: time.Now().UnixNano(),
}

// Option customizes the behavior of a pool.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(options *options) { f(options) }

// URL specifies the primary server address. It is admitted to the pool
// before any of the additional servers.
func URL(url string) Option {
	return optionFunc(func(options *options) {
		options.url = url
	})
}

// Servers specifies additional server addresses, admitted in the given
// order after the primary URL.
func Servers(servers ...string) Option {
	return optionFunc(func(options *options) {
		options.servers = append(options.servers, servers...)
	})
}

// NoShuffle disables the default behavior of shuffling server order.
func NoShuffle() Option {
	return optionFunc(func(options *options) {
		options.noShuffle = true
	})
}

// Seed specifies the random seed to use for shuffling servers.
//
// Defaults to approximately the pool construction time in nanoseconds. The
// pool builds a single random source from the seed and reuses it for every
// shuffle.
func Seed(seed int64) Option {
	return optionFunc(func(options *options) {
		options.seed = seed
	})
}

// Capacity specifies the initial capacity of the underlying data structures
// for this pool.
//
// Defaults to the number of configured addresses, with a minimum of 1.
func Capacity(capacity int) Option {
	return optionFunc(func(options *options) {
		options.capacity = capacity
	})
}

// Logger specifies a logger.
func Logger(logger *zap.Logger) Option {
	return optionFunc(func(options *options) {
		options.logger = logger
	})
}

// Meter specifies a metrics scope on which the pool registers its rotation,
// eviction, and merge counters.
func Meter(meter *metrics.Scope) Option {
	return optionFunc(func(options *options) {
		options.meter = meter
	})
}
