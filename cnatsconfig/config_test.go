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

package cnatsconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/phigoro/cnats/serverpool"
)

func TestDecodeConfig(t *testing.T) {
	type testStruct struct {
		msg     string
		give    map[string]interface{}
		want    Config
		wantErr bool
	}
	tests := []testStruct{
		{
			msg:  "empty map keeps defaults",
			give: map[string]interface{}{},
			want: Config{MaxReconnect: DefaultMaxReconnect},
		},
		{
			msg: "full configuration",
			give: map[string]interface{}{
				"url":          "nats://a:4222",
				"servers":      []interface{}{"b:4222", "c:4222"},
				"noRandomize":  true,
				"maxReconnect": 10,
			},
			want: Config{
				URL:          "nats://a:4222",
				Servers:      []string{"b:4222", "c:4222"},
				NoRandomize:  true,
				MaxReconnect: 10,
			},
		},
		{
			msg: "zero retry budget is preserved",
			give: map[string]interface{}{
				"maxReconnect": 0,
			},
			want: Config{MaxReconnect: 0},
		},
		{
			msg: "wrong attribute type",
			give: map[string]interface{}{
				"servers": 42,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			cfg, err := DecodeConfig(tt.give)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to decode server pool configuration")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestValidateReportsEveryBadAddress(t *testing.T) {
	cfg := Config{
		URL:     "nats://a:0",
		Servers: []string{"b:4222", "c:badport", ""},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestValidateAcceptsGoodConfig(t *testing.T) {
	cfg := Config{
		URL:     "nats://a:4222",
		Servers: []string{"b:4222", "tls://derek:s3cr3t@c:4443"},
	}
	assert.NoError(t, cfg.Validate())
}

func TestBuildPool(t *testing.T) {
	cfg, err := DecodeConfig(map[string]interface{}{
		"url":         "nats://a:4222",
		"servers":     []interface{}{"b:4222", "c:4222"},
		"noRandomize": true,
	})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	pool, err := cfg.BuildPool()
	require.NoError(t, err)
	defer pool.Close()

	require.Equal(t, 3, pool.Len())

	hostPorts := make([]string, 0, pool.Len())
	for _, s := range pool.Servers() {
		hostPorts = append(hostPorts, s.HostPort())
	}
	assert.Equal(t, []string{"a:4222", "b:4222", "c:4222"}, hostPorts)
}

func TestBuildPoolEmptyConfig(t *testing.T) {
	cfg, err := DecodeConfig(map[string]interface{}{})
	require.NoError(t, err)

	pool, err := cfg.BuildPool()
	require.NoError(t, err)
	defer pool.Close()

	require.Equal(t, 1, pool.Len())
	assert.Equal(t, "localhost:4222", pool.Servers()[0].HostPort())
}

func TestBuildPoolAppliesExtraOptions(t *testing.T) {
	cfg := &Config{Servers: []string{"a:4222", "b:4222"}}

	pool, err := cfg.BuildPool(serverpool.NoShuffle(), serverpool.Capacity(8))
	require.NoError(t, err)
	defer pool.Close()

	hostPorts := make([]string, 0, pool.Len())
	for _, s := range pool.Servers() {
		hostPorts = append(hostPorts, s.HostPort())
	}
	assert.Equal(t, []string{"a:4222", "b:4222"}, hostPorts)
}

func TestBuildPoolInvalidAddress(t *testing.T) {
	cfg := &Config{Servers: []string{"a:4222", "b:badport"}}

	pool, err := cfg.BuildPool()
	require.Error(t, err)
	assert.Nil(t, pool)
}
