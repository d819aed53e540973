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
	generateStartedTotal   atomic.Uint64
	generateSucceededTotal atomic.Uint64
	generateDegradedTotal  atomic.Uint64
	generateFailedTotal    atomic.Uint64
	cvDownloadsTotal       atomic.Uint64

	transformDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncGenerateStarted increments the started counter.
func IncGenerateStarted() {
	generateStartedTotal.Add(1)
}

// IncGenerateSucceeded increments the succeeded counter.
func IncGenerateSucceeded() {
	generateSucceededTotal.Add(1)
}

// IncGenerateDegraded increments the degraded counter (raw saved, transform failed).
func IncGenerateDegraded() {
	generateDegradedTotal.Add(1)
}

// IncGenerateFailed increments the failed counter (store error).
func IncGenerateFailed() {
	generateFailedTotal.Add(1)
}

// IncCVDownload increments the download counter.
func IncCVDownload() {
	cvDownloadsTotal.Add(1)
}

// ObserveTransformDurationMs records a transform call duration in milliseconds.
func ObserveTransformDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	transformDuration.Observe(value)
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
	writeCounter(&buf, "generate_started_total", "Total CV generations started", generateStartedTotal.Load())
	writeCounter(&buf, "generate_succeeded_total", "Total CV generations completed with a transformed CV", generateSucceededTotal.Load())
	writeCounter(&buf, "generate_degraded_total", "Total CV generations saved without a transformed CV", generateDegradedTotal.Load())
	writeCounter(&buf, "generate_failed_total", "Total CV generations failed on the store", generateFailedTotal.Load())
	writeCounter(&buf, "cv_downloads_total", "Total CV PDF downloads served", cvDownloadsTotal.Load())
	writeHistogram(&buf, "transform_duration_ms", "LLM transform duration in milliseconds", transformDuration.Snapshot())
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
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
