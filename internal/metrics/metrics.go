// Package metrics defines prometheus metrics to expose
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hunt_api_request_duration_seconds",
			Help:    "Total time taken for requests in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"path"},
	)

	ResponseCodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hunt_api_status_code",
			Help: "Status Codes",
		},
		[]string{"path", "status_code"},
	)

	PayloadRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hunt_api_payload_rejections_total",
			Help: "Cookie payloads rejected before baking, by reason",
		},
		[]string{"reason"},
	)

	CookiesBaked = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hunt_api_cookies_baked",
			Help:    "Batches computed per bake request",
			Buckets: []float64{0, 1, 2, 5, 10, 100, 1000, 1e6},
		},
	)

	Panics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hunt_api_panics_total",
			Help: "Recovered handler panics",
		},
	)
)
