package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
)

type mockHealthSvc struct {
	checkFn func(ctx context.Context) *domain.HealthReport
}

func (m *mockHealthSvc) Check(ctx context.Context) *domain.HealthReport {
	return m.checkFn(ctx)
}

func getHealth(svc healthService) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHealthHandler(svc)
	h.Register(r.Group(""))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	return w
}

func reportWithStatus(status string) *domain.HealthReport {
	return &domain.HealthReport{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Services: map[string]domain.ServiceHealthStatus{
			"mongodb":  {Healthy: status != domain.StatusUnhealthy, Message: "ok", ResponseTimeMs: 8},
			"postgres": {Healthy: true, Message: "ok", ResponseTimeMs: 3},
		},
		TotalDurationMs: 11,
	}
}

func TestHealth_Healthy(t *testing.T) {
	svc := &mockHealthSvc{
		checkFn: func(_ context.Context) *domain.HealthReport {
			return reportWithStatus(domain.StatusHealthy)
		},
	}

	w := getHealth(svc)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp domain.HealthReport
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != domain.StatusHealthy {
		t.Errorf("expected healthy, got %s", resp.Status)
	}
	if len(resp.Services) != 2 {
		t.Errorf("expected 2 services, got %d", len(resp.Services))
	}
}

func TestHealth_WireFieldNames(t *testing.T) {
	svc := &mockHealthSvc{
		checkFn: func(_ context.Context) *domain.HealthReport {
			return reportWithStatus(domain.StatusHealthy)
		},
	}

	w := getHealth(svc)

	var resp struct {
		Status        string `json:"status"`
		TotalDuration *int64 `json:"totalDuration"`
		Services      map[string]struct {
			Healthy      *bool  `json:"healthy"`
			Message      string `json:"message"`
			ResponseTime *int64 `json:"responseTime"`
		} `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TotalDuration == nil {
		t.Error("expected totalDuration field")
	}
	mongo, ok := resp.Services["mongodb"]
	if !ok {
		t.Fatal("expected mongodb service entry")
	}
	if mongo.Healthy == nil {
		t.Error("expected healthy field")
	}
	if mongo.ResponseTime == nil {
		t.Error("expected responseTime field")
	}
}

func TestHealth_Degraded_Still200(t *testing.T) {
	svc := &mockHealthSvc{
		checkFn: func(_ context.Context) *domain.HealthReport {
			return reportWithStatus(domain.StatusDegraded)
		},
	}

	if w := getHealth(svc); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHealth_Unhealthy_503(t *testing.T) {
	svc := &mockHealthSvc{
		checkFn: func(_ context.Context) *domain.HealthReport {
			return reportWithStatus(domain.StatusUnhealthy)
		},
	}

	if w := getHealth(svc); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestHealth_AggregatorFailure_500(t *testing.T) {
	svc := &mockHealthSvc{
		checkFn: func(_ context.Context) *domain.HealthReport {
			return nil
		},
	}

	if w := getHealth(svc); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
