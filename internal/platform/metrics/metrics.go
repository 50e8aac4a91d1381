// Package metrics keeps in-process request counters for the /metrics report.
package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

type Collector struct {
	started      time.Time
	total        atomic.Uint64
	serverErrors atomic.Uint64
	clientErrors atomic.Uint64
	denied       atomic.Uint64
	rateLimited  atomic.Uint64
	durationMs   atomic.Uint64
}

func New() *Collector {
	return &Collector{started: time.Now()}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	RequestsTotal     uint64  `json:"requestsTotal"`
	ServerErrorsTotal uint64  `json:"serverErrorsTotal"`
	ClientErrorsTotal uint64  `json:"clientErrorsTotal"`
	DeniedTotal       uint64  `json:"deniedTotal"`
	RateLimitedTotal  uint64  `json:"rateLimitedTotal"`
	AvgDurationMs     float64 `json:"avgDurationMs"`
	UptimeSeconds     int64   `json:"uptimeSeconds"`
}

// Record counts one finished request. Denied covers 401 and 403 answers
// from the access gate.
func (c *Collector) Record(status int, duration time.Duration) {
	c.total.Add(1)
	switch {
	case status >= 500:
		c.serverErrors.Add(1)
	case status == http.StatusTooManyRequests:
		c.rateLimited.Add(1)
		c.clientErrors.Add(1)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		c.denied.Add(1)
		c.clientErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.durationMs.Add(uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() Snapshot {
	total := c.total.Load()
	out := Snapshot{
		RequestsTotal:     total,
		ServerErrorsTotal: c.serverErrors.Load(),
		ClientErrorsTotal: c.clientErrors.Load(),
		DeniedTotal:       c.denied.Load(),
		RateLimitedTotal:  c.rateLimited.Load(),
		UptimeSeconds:     int64(time.Since(c.started).Seconds()),
	}
	if total > 0 {
		out.AvgDurationMs = float64(c.durationMs.Load()) / float64(total)
	}
	return out
}
