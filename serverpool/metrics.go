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
	"go.uber.org/net/metrics"
	"go.uber.org/zap"
)

// poolMetrics holds the pool's counters. All counters are nil when no meter
// is configured; net/metrics counters are nil-safe.
type poolMetrics struct {
	rotations       *metrics.Counter
	evictions       *metrics.Counter
	mergeAdmissions *metrics.Counter
	mergeDuplicates *metrics.Counter
}

func newPoolMetrics(meter *metrics.Scope, logger *zap.Logger) poolMetrics {
	var pm poolMetrics
	if meter == nil {
		return pm
	}

	var err error
	pm.rotations, err = meter.Counter(metrics.Spec{
		Name: "server_rotations",
		Help: "Number of servers rotated to the back of the pool.",
	})
	if err != nil {
		logger.Error("Failed to create rotations counter.", zap.Error(err))
	}
	pm.evictions, err = meter.Counter(metrics.Spec{
		Name: "server_evictions",
		Help: "Number of servers evicted after exhausting their retry budget.",
	})
	if err != nil {
		logger.Error("Failed to create evictions counter.", zap.Error(err))
	}
	pm.mergeAdmissions, err = meter.Counter(metrics.Spec{
		Name: "server_merge_admissions",
		Help: "Number of discovered servers admitted by merges.",
	})
	if err != nil {
		logger.Error("Failed to create merge admissions counter.", zap.Error(err))
	}
	pm.mergeDuplicates, err = meter.Counter(metrics.Spec{
		Name: "server_merge_duplicates",
		Help: "Number of discovered servers skipped as already known.",
	})
	if err != nil {
		logger.Error("Failed to create merge duplicates counter.", zap.Error(err))
	}
	return pm
}
