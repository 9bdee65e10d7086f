package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/meetnmeal/internal/models"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.SessionCreated()
	m.SessionCreated()
	m.SessionExpired("Session Closed")
	m.MemberJoined()
	m.ComputeFinished(20*time.Millisecond, nil)
	m.ComputeFinished(20*time.Millisecond, errors.New("engine down"))
	m.EventPublished(models.EventUserJoined, 3)
	m.EventDropped(models.EventUserReady)
	m.SubscribersChanged(2)
	m.SubscribersChanged(-1)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"sessions created", testutil.ToFloat64(m.SessionsCreated), 2},
		{"sessions active", testutil.ToFloat64(m.SessionsActive), 1},
		{"sessions expired", testutil.ToFloat64(m.SessionsExpired.WithLabelValues("Session Closed")), 1},
		{"members joined", testutil.ToFloat64(m.MembersJoined), 1},
		{"compute failures", testutil.ToFloat64(m.ComputeFailures), 1},
		{"events delivered", testutil.ToFloat64(m.EventsPublished.WithLabelValues("USER_JOINED")), 3},
		{"events dropped", testutil.ToFloat64(m.EventsDropped.WithLabelValues("USER_READY")), 1},
		{"subscribers", testutil.ToFloat64(m.Subscribers), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.SessionCreated()
	m.SessionExpired("x")
	m.ComputeFinished(time.Second, nil)
	m.HTTPRequest("/", 200, time.Millisecond)
	m.EventPublished(models.EventUserJoined, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Errorf("nil handler: expected 404, got %d", rec.Code)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.HTTPRequest("POST /group/create", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	if !strings.Contains(string(body), `meetnmeal_http_requests_total{code="200",route="POST /group/create"} 1`) {
		t.Errorf("exposition missing request counter:\n%s", body)
	}
}
