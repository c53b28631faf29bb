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
	resumeChecksTotal    atomic.Uint64
	resumeChecksRejected atomic.Uint64
	resumeChecksFailed   atomic.Uint64
	resumeChecksThrottle atomic.Uint64

	checkDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncResumeCheck increments the completed resume check counter.
func IncResumeCheck() {
	resumeChecksTotal.Add(1)
}

// IncResumeCheckRejected increments the validation rejection counter.
func IncResumeCheckRejected() {
	resumeChecksRejected.Add(1)
}

// IncResumeCheckFailed increments the adapter failure counter.
func IncResumeCheckFailed() {
	resumeChecksFailed.Add(1)
}

// IncResumeCheckThrottled increments the throttled request counter.
func IncResumeCheckThrottled() {
	resumeChecksThrottle.Add(1)
}

// ObserveCheckDurationMs records a resume check duration in milliseconds.
func ObserveCheckDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	checkDuration.Observe(value)
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
	writeCounter(&buf, "resume_checks_total", "Total resume checks completed", resumeChecksTotal.Load())
	writeCounter(&buf, "resume_checks_rejected_total", "Total resume checks rejected by validation", resumeChecksRejected.Load())
	writeCounter(&buf, "resume_checks_failed_total", "Total resume checks failed at the adapter", resumeChecksFailed.Load())
	writeCounter(&buf, "resume_checks_throttled_total", "Total resume checks rejected by the hourly quota", resumeChecksThrottle.Load())
	writeHistogram(&buf, "resume_check_duration_ms", "Resume check duration in milliseconds", checkDuration.Snapshot())
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
