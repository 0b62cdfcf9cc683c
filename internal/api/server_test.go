package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/heartmind/internal/anthropic"
	"github.com/MikeSquared-Agency/heartmind/internal/sculpture"
	"github.com/MikeSquared-Agency/heartmind/internal/session"
)

type stubLLM struct {
	reply string
}

func (s stubLLM) Complete(ctx context.Context, system string, messages []anthropic.Message, maxTokens int) (string, error) {
	return s.reply, nil
}

func newTestServer(t *testing.T, token string) *Server {
	t.Helper()
	reg := session.NewRegistry(func() time.Time { return time.Date(2025, 8, 30, 4, 0, 0, 0, time.UTC) })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc := sculpture.New(reg, stubLLM{reply: "*soft golden glow* I hear you. I am enough."}, logger)
	return NewServer(8760, token, sc)
}

func do(t *testing.T, srv *Server, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	w := do(t, srv, "GET", "/health", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	w := do(t, srv, "GET", "/api/v1/heartmind/status", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["agent"] != "heartmind" {
		t.Errorf("expected agent heartmind, got %v", body["agent"])
	}
	if body["mood"] != "philosophical_night" {
		t.Errorf("expected night mood at 04:00, got %v", body["mood"])
	}
}

func TestExamplesEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	w := do(t, srv, "GET", "/api/v1/examples", "", "")
	var body map[string][]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body["examples"]) == 0 {
		t.Error("expected example prompts")
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	w := do(t, srv, "GET", "/nonexistent", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestSessionFlow(t *testing.T) {
	srv := newTestServer(t, "")

	w := do(t, srv, "POST", "/api/v1/sessions", "", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var st session.State
	if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	base := "/api/v1/sessions/" + st.ID.String()

	w = do(t, srv, "POST", base+"/messages", `{"text":"My bike got stolen","visitor_count":1,"interaction_state":"active"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res sculpture.Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.Display != "I hear you. I am enough." || len(res.Cues) != 1 || res.Safety || res.Tier != "short" {
		t.Errorf("unexpected result %+v", res)
	}

	w = do(t, srv, "GET", base, "", "")
	var got session.State
	json.NewDecoder(w.Body).Decode(&got)
	if got.InteractionCount != 1 {
		t.Errorf("expected 1 interaction, got %d", got.InteractionCount)
	}

	w = do(t, srv, "GET", base+"/transcript", "", "")
	var tr struct {
		Messages []session.Entry `json:"messages"`
		LastCues []string        `json:"last_cues"`
	}
	json.NewDecoder(w.Body).Decode(&tr)
	if len(tr.Messages) != 2 || len(tr.LastCues) != 1 || tr.LastCues[0] != "soft golden glow" {
		t.Errorf("unexpected transcript %+v", tr)
	}

	w = do(t, srv, "DELETE", base, "", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	w = do(t, srv, "GET", base, "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestPostMessage_Validation(t *testing.T) {
	srv := newTestServer(t, "")
	w := do(t, srv, "POST", "/api/v1/sessions", "", "")
	var st session.State
	json.NewDecoder(w.Body).Decode(&st)
	base := "/api/v1/sessions/" + st.ID.String()

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"bad json", base + "/messages", `{`, http.StatusBadRequest},
		{"empty text", base + "/messages", `{"text":"   "}`, http.StatusBadRequest},
		{"bad state", base + "/messages", `{"text":"hi","interaction_state":"asleep"}`, http.StatusBadRequest},
		{"bad id", "/api/v1/sessions/not-a-uuid/messages", `{"text":"hi"}`, http.StatusBadRequest},
		{"unknown session", "/api/v1/sessions/" + uuid.New().String() + "/messages", `{"text":"hi"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.path, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestBearerAuth(t *testing.T) {
	srv := newTestServer(t, "s3cret")

	if w := do(t, srv, "POST", "/api/v1/sessions", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
	if w := do(t, srv, "POST", "/api/v1/sessions", "", "wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", w.Code)
	}
	if w := do(t, srv, "POST", "/api/v1/sessions", "", "s3cret"); w.Code != http.StatusCreated {
		t.Errorf("expected 201 with token, got %d", w.Code)
	}
	if w := do(t, srv, "GET", "/health", "", ""); w.Code != http.StatusOK {
		t.Errorf("health must stay public, got %d", w.Code)
	}
}
