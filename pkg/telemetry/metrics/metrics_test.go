package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"llm-council/councilconf/pkg/config"
	"llm-council/councilconf/pkg/parser"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:   true,
		Namespace: "test",
		Subsystem: "metrics",
	}
}

func TestInstrument_RecordsParses(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	p := collector.Instrument(parser.Native{})

	if p.Name() != parser.BackendNative {
		t.Errorf("instrumented parser name = %q, want %q", p.Name(), parser.BackendNative)
	}

	if _, err := p.Parse("a: 1\n"); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := p.Parse("- a\n"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := p.Parse("body: |\n  text"); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	pm := collector.parseMetrics
	if got := testutil.ToFloat64(pm.parsesTotal.WithLabelValues("native", "success")); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(pm.parsesTotal.WithLabelValues("native", "error")); got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pm.warningsTotal.WithLabelValues("native")); got != 1 {
		t.Errorf("warning count = %v, want 1", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, nil)

	collector.RecordParse("native", time.Millisecond, 0, nil)
	collector.RecordReload("watch", nil)

	if got := testutil.ToFloat64(collector.parseMetrics.parsesTotal.WithLabelValues("native", "success")); got != 0 {
		t.Errorf("disabled collector recorded %v parses", got)
	}
	if got := testutil.ToFloat64(collector.sourceMetrics.reloadsTotal.WithLabelValues("watch", "success")); got != 0 {
		t.Errorf("disabled collector recorded %v reloads", got)
	}
}

func TestCollector_RecordReload(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordReload("watch", nil)
	collector.RecordReload("watch", errors.New("boom"))
	collector.RecordReload("resync", nil)

	sm := collector.sourceMetrics
	if got := testutil.ToFloat64(sm.reloadsTotal.WithLabelValues("watch", "success")); got != 1 {
		t.Errorf("watch success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sm.reloadsTotal.WithLabelValues("watch", "error")); got != 1 {
		t.Errorf("watch error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sm.lastReloadSuccess); got <= 0 {
		t.Errorf("last reload timestamp = %v, want > 0", got)
	}
}

func TestCollector_Defaults(t *testing.T) {
	collector := NewCollector(nil, nil)
	if collector.config.Namespace != config.DefaultMetricsNamespace {
		t.Errorf("namespace = %q", collector.config.Namespace)
	}
	if collector.Registry() == nil {
		t.Error("expected registry")
	}
}

func TestHandler(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.RecordParse("yaml", 2*time.Millisecond, 0, nil)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test_metrics_parses_total") {
		t.Errorf("expected parses_total in output:\n%s", rec.Body.String())
	}
}
