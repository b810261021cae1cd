// Package metrics exposes Prometheus counters for habit tracking, achievement
// unlocks, HTTP traffic and storage health.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what services and middleware report to.
type Recorder interface {
	RecordHabit(completed bool)
	RecordUnlock(achievementID string)
	RecordXP(xp int)
	RecordRequest(method, route string, statusCode int, duration time.Duration)
	RecordRateLimited()
	StorageRetry(op string)
	StorageDegraded(degraded bool)
}

type Collector struct {
	habits       *prometheus.CounterVec
	unlocks      *prometheus.CounterVec
	xpAwarded    prometheus.Counter
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	rateLimited  prometheus.Counter
	storeRetries *prometheus.CounterVec
	degraded     prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		habits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glow_habit_toggles_total",
			Help: "Habit toggles by resulting state",
		}, []string{"completed"}),
		unlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glow_achievement_unlocks_total",
			Help: "Achievement unlocks by achievement id",
		}, []string{"achievement"}),
		xpAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "glow_xp_awarded_total",
			Help: "XP granted to users",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glow_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "glow_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "glow_http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
		storeRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glow_storage_retries_total",
			Help: "Storage call retries by operation",
		}, []string{"op"}),
		degraded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "glow_storage_degraded",
			Help: "1 while storage refuses writes",
		}),
	}

	reg.MustRegister(
		c.habits,
		c.unlocks,
		c.xpAwarded,
		c.requests,
		c.latency,
		c.rateLimited,
		c.storeRetries,
		c.degraded,
	)

	return c
}

func (c *Collector) RecordHabit(completed bool) {
	c.habits.WithLabelValues(strconv.FormatBool(completed)).Inc()
}

func (c *Collector) RecordUnlock(achievementID string) {
	c.unlocks.WithLabelValues(achievementID).Inc()
}

func (c *Collector) RecordXP(xp int) {
	if xp > 0 {
		c.xpAwarded.Add(float64(xp))
	}
}

func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

func (c *Collector) StorageRetry(op string) {
	c.storeRetries.WithLabelValues(op).Inc()
}

func (c *Collector) StorageDegraded(degraded bool) {
	if degraded {
		c.degraded.Set(1)
		return
	}
	c.degraded.Set(0)
}

// Handler serves the registry for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop discards everything. Used when metrics are not wired, e.g. in tests.
type Noop struct{}

func (Noop) RecordHabit(bool)                                 {}
func (Noop) RecordUnlock(string)                              {}
func (Noop) RecordXP(int)                                     {}
func (Noop) RecordRequest(string, string, int, time.Duration) {}
func (Noop) RecordRateLimited()                               {}
func (Noop) StorageRetry(string)                              {}
func (Noop) StorageDegraded(bool)                             {}
