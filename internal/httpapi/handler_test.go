package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/meetnmeal/internal/auth"
	"github.com/mmynk/meetnmeal/internal/compute"
	"github.com/mmynk/meetnmeal/internal/middleware"
	"github.com/mmynk/meetnmeal/internal/models"
	"github.com/mmynk/meetnmeal/internal/service"
	"github.com/mmynk/meetnmeal/internal/storage/sqlite"
)

func stubEngine(names ...string) compute.Engine {
	return compute.EngineFunc(func(ctx context.Context, prefs []models.PreferenceSet) ([]models.Recommendation, error) {
		out := make([]models.Recommendation, len(names))
		for i, n := range names {
			out[i] = models.Recommendation{
				Restaurant: models.Restaurant{Name: n, Cuisines: []string{"thai"}, Location: "hsr"},
				Score:      float64(len(names) - i),
			}
		}
		return out, nil
	})
}

type testServer struct {
	*httptest.Server
	coord *service.Coordinator
}

// setupTestServer serves the REST routes for a fresh coordinator backed by a
// temporary SQLite archive.
func setupTestServer(t *testing.T, svcOpts service.Options, opts Options) *testServer {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	if svcOpts.Engine == nil {
		svcOpts.Engine = stubEngine("Truffles", "Meghana Foods")
	}
	if svcOpts.Expiry.Tick == 0 {
		svcOpts.Expiry.Tick = 5 * time.Millisecond
	}
	svcOpts.Archive = store
	svcOpts.Tokens = opts.Tokens
	coord := service.NewCoordinator(svcOpts)

	mux := http.NewServeMux()
	New(coord, opts).Register(mux)
	server := httptest.NewServer(middleware.Logging(nil)(mux))

	t.Cleanup(func() {
		server.Close()
		coord.Shutdown()
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return &testServer{Server: server, coord: coord}
}

// do sends a request and decodes the JSON response into out, if non-nil.
func (s *testServer) do(t *testing.T, method, path, body string, out any) int {
	t.Helper()
	return s.doWithHeader(t, method, path, body, nil, out)
}

func (s *testServer) doWithHeader(t *testing.T, method, path, body string, header http.Header, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, r)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("%s %s: content type %q", method, path, ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode failed: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func (s *testServer) createAndJoin(t *testing.T, members int) (string, []string) {
	t.Helper()
	var created createResponse
	if code := s.do(t, "POST", "/group/create", "", &created); code != http.StatusOK {
		t.Fatalf("create: status %d", code)
	}
	var users []string
	for range members {
		var joined joinResponse
		if code := s.do(t, "POST", "/group/join/"+created.GroupID, "", &joined); code != http.StatusOK {
			t.Fatalf("join: status %d", code)
		}
		users = append(users, joined.UserID)
	}
	return created.GroupID, users
}

func TestHandler_FullFlow(t *testing.T) {
	s := setupTestServer(t, service.Options{}, Options{})
	group, users := s.createAndJoin(t, 2)

	body := `{"cuisines":["Thai"],"rest_type":["Casual Dining"],"dish_pref":["pad thai"],"budget":800,"location":"HSR"}`
	var ok okResponse
	if code := s.do(t, "POST", "/group/submit/"+group+"/"+users[0], body, &ok); code != http.StatusOK || !ok.OK {
		t.Fatalf("submit: status %d, %+v", code, ok)
	}

	var st statusResponse
	s.do(t, "GET", "/group/status/"+group, "", &st)
	if st != (statusResponse{Joined: 2, Ready: 1, State: "OPEN"}) {
		t.Errorf("status: got %+v", st)
	}

	var errResp errorResponse
	if code := s.do(t, "GET", "/group/result/"+group, "", &errResp); code != http.StatusConflict || errResp.Error != "not_ready" {
		t.Errorf("result before compute: status %d, %+v", code, errResp)
	}

	if code := s.do(t, "POST", "/group/compute/"+group, "", &ok); code != http.StatusOK || !ok.OK {
		t.Fatalf("compute: status %d", code)
	}

	errResp = errorResponse{}
	if code := s.do(t, "POST", "/group/compute/"+group, "", &errResp); code != http.StatusConflict {
		t.Errorf("second compute: status %d", code)
	}
	if errResp.Error != "wrong_state" || len(errResp.Restaurants) != 2 {
		t.Errorf("second compute body: %+v", errResp)
	}

	var raw map[string][]map[string]any
	s.do(t, "GET", "/group/result/"+group, "", &raw)
	list := raw["restaurants"]
	if len(list) != 2 || list[0]["name"] != "Truffles" {
		t.Fatalf("result: got %v", raw)
	}
	for _, key := range []string{"cuisines", "rest_type", "cost", "location", "rate", "distance_km", "distance_score", "final_score_adjusted"} {
		if _, ok := list[0][key]; !ok {
			t.Errorf("result entry missing %q: %v", key, list[0])
		}
	}

	if code := s.do(t, "POST", "/group/close/"+group, "", &ok); code != http.StatusOK {
		t.Fatalf("close: status %d", code)
	}
	if code := s.do(t, "GET", "/group/status/"+group, "", nil); code != http.StatusNotFound {
		t.Errorf("status after close: %d", code)
	}

	var rec archiveResponse
	if code := s.do(t, "GET", "/group/archive/"+group, "", &rec); code != http.StatusOK {
		t.Fatalf("archive: status %d", code)
	}
	if rec.GroupID != group || rec.Reason != "Session Closed" || rec.MemberCount != 2 || rec.ReadyCount != 1 {
		t.Errorf("archive: got %+v", rec)
	}
	if len(rec.TopPicks) != 2 || rec.TopPicks[1] != "Meghana Foods" {
		t.Errorf("archive picks: got %v", rec.TopPicks)
	}
}

func TestHandler_Errors(t *testing.T) {
	s := setupTestServer(t, service.Options{}, Options{})
	group, users := s.createAndJoin(t, 1)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"join unknown session", "POST", "/group/join/NOPE00", "", http.StatusNotFound, "not_found"},
		{"status unknown session", "GET", "/group/status/NOPE00", "", http.StatusNotFound, "not_found"},
		{"submit unknown member", "POST", "/group/submit/" + group + "/ghost", "{}", http.StatusNotFound, "not_found"},
		{"submit malformed body", "POST", "/group/submit/" + group + "/" + users[0], "{", http.StatusBadRequest, "invalid_request"},
		{"submit negative budget", "POST", "/group/submit/" + group + "/" + users[0], `{"budget":-1}`, http.StatusBadRequest, "invalid_request"},
		{"compute with nobody ready", "POST", "/group/compute/" + group, "", http.StatusConflict, "wrong_state"},
		{"close before result", "POST", "/group/close/" + group, "", http.StatusConflict, "wrong_state"},
		{"close with bad grace", "POST", "/group/close/" + group + "?grace=soon", "", http.StatusBadRequest, "invalid_request"},
		{"close with negative grace", "POST", "/group/close/" + group + "?grace=-3", "", http.StatusBadRequest, "invalid_request"},
		{"archive of live session", "GET", "/group/archive/" + group, "", http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp errorResponse
			code := s.do(t, tt.method, tt.path, tt.body, &resp)
			if code != tt.wantStatus {
				t.Errorf("status = %d, want %d", code, tt.wantStatus)
			}
			if resp.Error != tt.wantCode || resp.Detail == "" {
				t.Errorf("body = %+v, want error %q", resp, tt.wantCode)
			}
		})
	}
}

func TestHandler_SubmitEmptyBody(t *testing.T) {
	s := setupTestServer(t, service.Options{}, Options{})
	group, users := s.createAndJoin(t, 1)

	if code := s.do(t, "POST", "/group/submit/"+group+"/"+users[0], "", nil); code != http.StatusOK {
		t.Fatalf("submit: status %d", code)
	}
	var st statusResponse
	s.do(t, "GET", "/group/status/"+group, "", &st)
	if st.Ready != 1 {
		t.Errorf("ready: got %d, want 1", st.Ready)
	}
}

func TestHandler_ComputeFailure(t *testing.T) {
	failing := compute.EngineFunc(func(ctx context.Context, prefs []models.PreferenceSet) ([]models.Recommendation, error) {
		return nil, errors.New("catalog offline")
	})
	s := setupTestServer(t, service.Options{Engine: failing}, Options{})
	group, users := s.createAndJoin(t, 1)
	s.do(t, "POST", "/group/submit/"+group+"/"+users[0], "{}", nil)

	var resp errorResponse
	if code := s.do(t, "POST", "/group/compute/"+group, "", &resp); code != http.StatusBadGateway || resp.Error != "compute_failed" {
		t.Errorf("compute: status %d, %+v", code, resp)
	}
	var st statusResponse
	s.do(t, "GET", "/group/status/"+group, "", &st)
	if st.State != "OPEN" {
		t.Errorf("state after failure: %s", st.State)
	}
}

func TestHandler_EmptyResult(t *testing.T) {
	s := setupTestServer(t, service.Options{Engine: stubEngine()}, Options{})
	group, users := s.createAndJoin(t, 1)
	s.do(t, "POST", "/group/submit/"+group+"/"+users[0], "{}", nil)
	s.do(t, "POST", "/group/compute/"+group, "", nil)

	var raw map[string]json.RawMessage
	if code := s.do(t, "GET", "/group/result/"+group, "", &raw); code != http.StatusOK {
		t.Fatalf("result: status %d", code)
	}
	if string(raw["restaurants"]) != "[]" {
		t.Errorf("restaurants: got %s, want []", raw["restaurants"])
	}
}

func TestHandler_ResultEntryShape(t *testing.T) {
	engine := compute.EngineFunc(func(ctx context.Context, prefs []models.PreferenceSet) ([]models.Recommendation, error) {
		return []models.Recommendation{{
			Restaurant: models.Restaurant{
				Name:      "Truffles",
				Cuisines:  []string{"thai", "chinese"},
				RestTypes: []string{"Casual Dining", "Cafe"},
				Cost:      900,
				Rating:    4.5,
				Location:  "Koramangala",
			},
			DistanceKm: 1.2,
			Score:      0.7,
		}}, nil
	})
	s := setupTestServer(t, service.Options{Engine: engine}, Options{})
	group, users := s.createAndJoin(t, 1)
	s.do(t, "POST", "/group/submit/"+group+"/"+users[0], "{}", nil)
	s.do(t, "POST", "/group/compute/"+group, "", nil)

	var raw struct {
		Restaurants []map[string]any `json:"restaurants"`
	}
	if code := s.do(t, "GET", "/group/result/"+group, "", &raw); code != http.StatusOK {
		t.Fatalf("result: status %d", code)
	}
	if len(raw.Restaurants) != 1 {
		t.Fatalf("result: got %v", raw.Restaurants)
	}
	entry := raw.Restaurants[0]
	if got, ok := entry["cuisines"].(string); !ok || got != "thai, chinese" {
		t.Errorf("cuisines = %#v, want \"thai, chinese\"", entry["cuisines"])
	}
	if got, ok := entry["rest_type"].(string); !ok || got != "Casual Dining, Cafe" {
		t.Errorf("rest_type = %#v, want \"Casual Dining, Cafe\"", entry["rest_type"])
	}
	if entry["rate"] != 4.5 || entry["location"] != "Koramangala" {
		t.Errorf("entry: %v", entry)
	}
}

func TestHandler_Health(t *testing.T) {
	s := setupTestServer(t, service.Options{}, Options{})
	s.createAndJoin(t, 0)
	s.createAndJoin(t, 0)

	var h healthResponse
	if code := s.do(t, "GET", "/healthz", "", &h); code != http.StatusOK {
		t.Fatalf("healthz: status %d", code)
	}
	if !h.OK || h.Sessions != 2 {
		t.Errorf("healthz: got %+v", h)
	}
}

func TestHandler_MemberTokens(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	s := setupTestServer(t, service.Options{}, Options{Tokens: tokens, RequireTokens: true})

	var created createResponse
	s.do(t, "POST", "/group/create", "", &created)
	var alice, bob joinResponse
	s.do(t, "POST", "/group/join/"+created.GroupID, "", &alice)
	s.do(t, "POST", "/group/join/"+created.GroupID, "", &bob)
	if alice.Token == "" || bob.Token == "" {
		t.Fatalf("expected member tokens, got %+v %+v", alice, bob)
	}

	submit := func(userID, token string) int {
		h := http.Header{}
		if token != "" {
			h.Set("Authorization", "Bearer "+token)
		}
		return s.doWithHeader(t, "POST", "/group/submit/"+created.GroupID+"/"+userID, "{}", h, nil)
	}

	if code := submit(alice.UserID, ""); code != http.StatusUnauthorized {
		t.Errorf("no token: status %d", code)
	}
	if code := submit(alice.UserID, bob.Token); code != http.StatusUnauthorized {
		t.Errorf("other member's token: status %d", code)
	}
	if code := submit(alice.UserID, alice.Token); code != http.StatusOK {
		t.Errorf("own token: status %d", code)
	}
}
