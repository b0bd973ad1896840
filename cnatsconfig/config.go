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

// Package cnatsconfig builds server pools from configuration loaded at
// runtime, typically the decoded contents of a YAML or JSON file.
package cnatsconfig

import (
	"fmt"

	"github.com/uber-go/mapdecode"
	"go.uber.org/multierr"

	"github.com/phigoro/cnats/serverpool"
	"github.com/phigoro/cnats/serverurl"
)

const _tagName = "config"

// DefaultMaxReconnect is the retry budget applied when the configuration
// does not set one. Negative means unlimited.
const DefaultMaxReconnect = -1

// Config is the server pool section of a client configuration.
type Config struct {
	// URL is the primary server address.
	URL string `config:"url"`

	// Servers lists additional server addresses, tried in order unless
	// randomization is enabled.
	Servers []string `config:"servers"`

	// NoRandomize disables shuffling of the server order.
	NoRandomize bool `config:"noRandomize"`

	// MaxReconnect is the number of failed connection attempts tolerated per
	// server before it is evicted from the pool. Negative means unlimited,
	// zero evicts a server on its first failure.
	MaxReconnect int `config:"maxReconnect"`
}

// DecodeConfig decodes an attribute map into a Config. Attributes that the
// map does not carry keep their defaults.
func DecodeConfig(attrs map[string]interface{}) (*Config, error) {
	cfg := Config{MaxReconnect: DefaultMaxReconnect}
	if err := mapdecode.Decode(&cfg, attrs, mapdecode.TagName(_tagName)); err != nil {
		return nil, fmt.Errorf("failed to decode server pool configuration: %v", err)
	}
	return &cfg, nil
}

// Validate parses every configured address and reports all malformed ones in
// a single aggregated error. Pool construction itself stops at the first bad
// address; validating up front surfaces the full extent of a broken
// configuration in one pass.
func (c *Config) Validate() error {
	var errs error
	if c.URL != "" {
		if _, err := serverurl.Parse(c.URL); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, raw := range c.Servers {
		if _, err := serverurl.Parse(raw); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// BuildPool constructs a server pool from the configuration. Extra options
// are applied after the ones derived from the configuration, so they may
// override them.
func (c *Config) BuildPool(opts ...serverpool.Option) (*serverpool.Pool, error) {
	buildOpts := make([]serverpool.Option, 0, len(opts)+3)
	if c.URL != "" {
		buildOpts = append(buildOpts, serverpool.URL(c.URL))
	}
	if len(c.Servers) > 0 {
		buildOpts = append(buildOpts, serverpool.Servers(c.Servers...))
	}
	if c.NoRandomize {
		buildOpts = append(buildOpts, serverpool.NoShuffle())
	}
	buildOpts = append(buildOpts, opts...)
	return serverpool.New(buildOpts...)
}
