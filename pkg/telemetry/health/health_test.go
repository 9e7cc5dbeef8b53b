package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]CheckFunc
		wantStatus string
		wantCode   int
	}{
		{
			name:       "no checks",
			checks:     nil,
			wantStatus: StatusReady,
			wantCode:   http.StatusOK,
		},
		{
			name: "all passing",
			checks: map[string]CheckFunc{
				"config": func(context.Context) error { return nil },
			},
			wantStatus: StatusReady,
			wantCode:   http.StatusOK,
		},
		{
			name: "one failing",
			checks: map[string]CheckFunc{
				"config":  func(context.Context) error { return errors.New("configuration not loaded") },
				"watcher": func(context.Context) error { return nil },
			},
			wantStatus: StatusNotReady,
			wantCode:   http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(time.Second)
			for name, check := range tt.checks {
				c.RegisterCheck(name, check)
			}

			rec := httptest.NewRecorder()
			c.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status code = %d, want %d", rec.Code, tt.wantCode)
			}
			var report Report
			if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if report.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", report.Status, tt.wantStatus)
			}
			if len(report.Checks) != len(tt.checks) {
				t.Errorf("got %d check results, want %d", len(report.Checks), len(tt.checks))
			}
		})
	}
}

func TestReadiness_FailureMessage(t *testing.T) {
	c := New(time.Second)
	c.RegisterCheck("config", func(context.Context) error { return errors.New("configuration not loaded") })

	report := c.Readiness(context.Background())
	got := report.Checks["config"]
	if got.Status != StatusUnhealthy || got.Message != "configuration not loaded" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestReadiness_Timeout(t *testing.T) {
	c := New(20 * time.Millisecond)
	c.RegisterCheck("slow", func(ctx context.Context) error {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return nil
	})

	report := c.Readiness(context.Background())
	if report.Status != StatusNotReady {
		t.Errorf("status = %q, want %q", report.Status, StatusNotReady)
	}
}

func TestLivenessHandler(t *testing.T) {
	c := New(0)

	rec := httptest.NewRecorder()
	c.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status code = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	c.LivenessHandler()(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Errorf("HEAD: code = %d, body length = %d", rec.Code, rec.Body.Len())
	}

	rec = httptest.NewRecorder()
	c.LivenessHandler()(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST: code = %d, want 405", rec.Code)
	}
}

func TestNames(t *testing.T) {
	c := New(0)
	c.RegisterCheck("watcher", func(context.Context) error { return nil })
	c.RegisterCheck("config", func(context.Context) error { return nil })
	c.RegisterCheck("config", func(context.Context) error { return nil })

	if got, want := c.Names(), []string{"config", "watcher"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
