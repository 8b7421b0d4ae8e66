package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	recommendationStartedTotal   atomic.Uint64
	recommendationCompletedTotal atomic.Uint64
	recommendationFailedTotal    atomic.Uint64

	providerDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncRecommendationStarted increments the started counter.
func IncRecommendationStarted() {
	recommendationStartedTotal.Add(1)
}

// IncRecommendationCompleted increments the completed counter.
func IncRecommendationCompleted() {
	recommendationCompletedTotal.Add(1)
}

// IncRecommendationFailed increments the failed counter.
func IncRecommendationFailed() {
	recommendationFailedTotal.Add(1)
}

// ObserveProviderDurationMs records one LLM provider round trip in milliseconds.
func ObserveProviderDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	providerDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recommendation_started_total", "Total recommendation pipelines started", recommendationStartedTotal.Load())
	writeCounter(&buf, "recommendation_completed_total", "Total recommendation pipelines completed", recommendationCompletedTotal.Load())
	writeCounter(&buf, "recommendation_failed_total", "Total recommendation pipelines failed", recommendationFailedTotal.Load())
	writeHistogram(&buf, "provider_request_duration_ms", "LLM provider round trip duration in milliseconds", providerDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, formatBound(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, strconv.FormatFloat(snap.sum, 'f', -1, 64))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}
