// Package metrics keeps process-wide pipeline counters and renders them in
// the Prometheus text exposition format.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

type counter struct {
	name string
	help string
	n    atomic.Uint64
}

var (
	extracts        = &counter{name: "jd_extract_total", help: "Job description extractions attempted"}
	extractFailures = &counter{name: "jd_extract_failed_total", help: "Job description extractions that failed"}
	enhances        = &counter{name: "jd_enhance_total", help: "Job description enhancements attempted"}
	enhanceFailures = &counter{name: "jd_enhance_failed_total", help: "Job description enhancements that failed"}
	backfills       = &counter{name: "normalize_backfill_total", help: "Normalizations that injected defaults for missing required fields"}

	counters = []*counter{extracts, extractFailures, enhances, enhanceFailures, backfills}

	llmCallMs = newHistogram("llm_call_duration_ms", "Model call duration in milliseconds",
		[]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000})
)

func IncExtract()           { extracts.n.Add(1) }
func IncExtractFailed()     { extractFailures.n.Add(1) }
func IncEnhance()           { enhances.n.Add(1) }
func IncEnhanceFailed()     { enhanceFailures.n.Add(1) }
func IncNormalizeBackfill() { backfills.n.Add(1) }

// ObserveLLMCallMs records one model call. Negative durations count as zero.
func ObserveLLMCallMs(ms float64) {
	llmCallMs.Observe(max(ms, 0))
}

// Since returns milliseconds elapsed since start.
func Since(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// Handler serves Render as text/plain.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/plain; version=0.0.4; charset=utf-8", []byte(Render()))
	}
}

func Render() string {
	var b strings.Builder
	for _, c := range counters {
		header(&b, c.name, c.help, "counter")
		line(&b, c.name, "", strconv.FormatUint(c.n.Load(), 10))
	}
	llmCallMs.render(&b)
	return b.String()
}

// histogram stores per-bucket counts; render accumulates them.
type histogram struct {
	name, help string
	bounds     []float64

	mu     sync.Mutex
	counts []uint64
	total  uint64
	sum    float64
}

func newHistogram(name, help string, bounds []float64) *histogram {
	return &histogram{name: name, help: help, bounds: bounds, counts: make([]uint64, len(bounds))}
}

func (h *histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.total++
	h.sum += v
	for i, ub := range h.bounds {
		if v <= ub {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) render(b *strings.Builder) {
	h.mu.Lock()
	counts := append([]uint64(nil), h.counts...)
	total, sum := h.total, h.sum
	h.mu.Unlock()

	header(b, h.name, h.help, "histogram")
	var running uint64
	for i, ub := range h.bounds {
		running += counts[i]
		line(b, h.name+"_bucket", `le="`+num(ub)+`"`, strconv.FormatUint(running, 10))
	}
	line(b, h.name+"_bucket", `le="+Inf"`, strconv.FormatUint(total, 10))
	line(b, h.name+"_sum", "", num(sum))
	line(b, h.name+"_count", "", strconv.FormatUint(total, 10))
}

func header(b *strings.Builder, name, help, kind string) {
	b.WriteString("# HELP " + name + " " + help + "\n")
	b.WriteString("# TYPE " + name + " " + kind + "\n")
}

func line(b *strings.Builder, name, labels, value string) {
	b.WriteString(name)
	if labels != "" {
		b.WriteString("{" + labels + "}")
	}
	b.WriteString(" " + value + "\n")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
