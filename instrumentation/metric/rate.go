// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/VividCortex/ewma"
	"github.com/orbs-network/scribe/log"
	"sync"
	"time"
)

var tickInterval = 1 * time.Second

// Rate is an exponentially weighted moving average of events per tick.
type Rate struct {
	namedMetric
	movingAverage ewma.MovingAverage

	m          sync.Mutex
	runningSum int64
	total      int64
	nextTick   time.Time
}

// RateExport is a snapshot of a Rate as returned by Registry.ExportAll.
type RateExport struct {
	Name     string
	Rate     float64
	Total    int64
	Interval time.Duration
}

func newRate(name string) *Rate {
	return &Rate{
		namedMetric:   namedMetric{name: name},
		movingAverage: ewma.NewMovingAverage(),
		nextTick:      time.Now().Add(tickInterval),
	}
}

func (r *Rate) Export() exportedMetric {
	r.m.Lock()
	defer r.m.Unlock()
	return RateExport{
		r.name,
		r.movingAverage.Value(),
		r.total,
		tickInterval,
	}
}

func (r *Rate) String() string {
	e := r.Export().(RateExport)
	return fmt.Sprintf("metric %s: %f per %s (total %d)\n", e.Name, e.Rate, e.Interval, e.Total)
}

func (r *Rate) Measure(eventCount int64) {
	r.m.Lock()
	defer r.m.Unlock()
	for r.nextTick.Before(time.Now()) {
		r.movingAverage.Add(float64(r.runningSum))
		r.runningSum = 0
		r.nextTick = r.nextTick.Add(tickInterval)
	}

	r.runningSum += eventCount
	r.total += eventCount
}

func (e RateExport) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", e.Name),
		log.String("metric-type", "rate"),
		log.Float64("rate", e.Rate),
		log.Int64("total", e.Total),
	}
}
