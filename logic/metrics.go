package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks follower_bot/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartApiRequestOut(label string) IRequestObserver
	ActionDone(action string, success bool)
	CycleFinished(elapsed time.Duration)
	ServiceStarted()
	FollowedCount(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	webRequestsIn  *prometheus.HistogramVec
	apiRequestsOut *prometheus.HistogramVec
	actions        *prometheus.CounterVec
	cycles         prometheus.Counter
	cycleDuration  prometheus.Histogram
	serviceStarted prometheus.Counter
	followedCount  prometheus.Gauge
}

func NewMetrics() IMetrics {

	res := metrics{}

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of control requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.apiRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_out_duration",
		Help: "Duration in seconds of platform API requests made.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsOut)

	res.actions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "actions_total",
		Help: "Follow, unfollow and star actions attempted",
	}, []string{"action", "result"})
	prometheus.Register(res.actions)

	res.cycles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cycles_total",
		Help: "Number of completed cycles",
	})
	prometheus.Register(res.cycles)

	res.cycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cycle_duration",
		Help:    "Duration in seconds of a full cycle.",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
	})
	prometheus.Register(res.cycleDuration)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.followedCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "followed_count",
		Help: "Number of logins in the followed set",
	})
	prometheus.Register(res.followedCount)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartApiRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsOut}
}

func (m *metrics) ActionDone(action string, success bool) {
	result := "ok"
	if !success {
		result = "failed"
	}
	m.actions.WithLabelValues(action, result).Add(1)
}

func (m *metrics) CycleFinished(elapsed time.Duration) {
	m.cycles.Add(1)
	m.cycleDuration.Observe(elapsed.Seconds())
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) FollowedCount(count int) {
	m.followedCount.Set(float64(count))
}
