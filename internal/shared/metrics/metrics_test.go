package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncExtract()
	IncExtractFailed()
	IncEnhance()
	IncNormalizeBackfill()
	ObserveLLMCallMs(750)

	out := Render()
	for _, want := range []string{
		"# TYPE jd_extract_total counter",
		"jd_extract_failed_total ",
		"jd_enhance_total ",
		"normalize_backfill_total ",
		"# TYPE llm_call_duration_ms histogram",
		`llm_call_duration_ms_bucket{le="1000"}`,
		`llm_call_duration_ms_bucket{le="+Inf"}`,
		"llm_call_duration_ms_count ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram("test_ms", "test", []float64{10, 100})
	for _, v := range []float64{5, 50, 500, 2.5} {
		h.Observe(v)
	}
	var b strings.Builder
	h.render(&b)
	out := b.String()
	for _, want := range []string{
		`test_ms_bucket{le="10"} 2`,
		`test_ms_bucket{le="100"} 3`,
		`test_ms_bucket{le="+Inf"} 4`,
		"test_ms_sum 557.5",
		"test_ms_count 4",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}

func TestHandlerServesText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("content type = %q", resp.Header().Get("Content-Type"))
	}
}
