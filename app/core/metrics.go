package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/campus-sathi/campus-sathi/pkg/metrics"
)

type Metrics struct {
	apiResponseTime     *prometheus.HistogramVec
	apiErrorCounter     *prometheus.CounterVec
	providerRequestTime *prometheus.HistogramVec
	providerError       *prometheus.CounterVec
	turnStageTime       *prometheus.HistogramVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:     metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:     metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		providerRequestTime: metrics.NewHistogramVec("provider_request_time", []string{"target"}),
		providerError:       metrics.NewCounterVec("provider_error", []string{"type"}),
		turnStageTime:       metrics.NewHistogramVec("turn_stage_time", []string{"stage"}),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ProviderRequestTimer(target string) *prometheus.Timer {
	return prometheus.NewTimer(m.providerRequestTime.WithLabelValues(target))
}

func (m *Metrics) ProviderErrorInc(types string) {
	m.providerError.WithLabelValues(types).Inc()
}

func (m *Metrics) TurnStageTimer(stage string) *prometheus.Timer {
	return prometheus.NewTimer(m.turnStageTime.WithLabelValues(stage))
}
