package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
	"github.com/jsamuelsen11/go-scopeguard/mocks"
)

func newRunHandler(t *testing.T) (*handlers.RunHandler, *mocks.MockRunService) {
	t.Helper()
	svc := mocks.NewMockRunService(t)
	return handlers.NewRunHandler(svc), svc
}

// --- ListRuns ---

func TestListRuns_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().List(mock.Anything).Return([]run.Run{*validRun("b"), *validRun("a")}, nil)

	rec := httptest.NewRecorder()
	h.ListRuns(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.RunListResponse](t, rec)
	if resp.Count != 2 || resp.Runs[0].ID != "b" {
		t.Errorf("response = %+v, want 2 runs starting with b", resp)
	}
}

func TestListRuns_Empty(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().List(mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ListRuns(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))

	requireStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"runs":[]`) {
		t.Errorf("body = %s, want an empty runs array", rec.Body.String())
	}
}

func TestListRuns_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().List(mock.Anything).Return(nil, context.DeadlineExceeded)

	rec := httptest.NewRecorder()
	h.ListRuns(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))

	requireStatus(t, rec, http.StatusGatewayTimeout)
}

// --- CreateRun ---

func TestCreateRun_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().Execute(mock.Anything, run.ModeFault).Return(validRun("new"), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", jsonBody(t, dto.CreateRunRequest{Mode: "fault"}))
	h.CreateRun(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if loc := rec.Header().Get("Location"); loc != "/api/v1/runs/new" {
		t.Errorf("Location = %q, want %q", loc, "/api/v1/runs/new")
	}
	resp := decodeJSON[dto.RunResponse](t, rec)
	if resp.ID != "new" || !resp.Caught {
		t.Errorf("response = %+v, want id new with caught set", resp)
	}
}

func TestCreateRun_MenuDigit(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().Execute(mock.Anything, run.ModeClean).Return(validRun("c"), nil)

	rec := httptest.NewRecorder()
	h.CreateRun(rec, httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(`{"mode":"1"}`)))

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateRun_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{"mode":`},
		{name: "unknown field", body: `{"mode":"clean","speed":9}`},
		{name: "missing mode", body: `{}`},
		{name: "unknown mode", body: `{"mode":"turbo"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newRunHandler(t)

			rec := httptest.NewRecorder()
			h.CreateRun(rec, httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(tt.body)))

			requireStatus(t, rec, http.StatusBadRequest)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want problem+json", ct)
			}
		})
	}
}

func TestCreateRun_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().Execute(mock.Anything, run.ModeClean).Return(nil, fmt.Errorf("saving run: %w", domain.ErrUnavailable))

	rec := httptest.NewRecorder()
	h.CreateRun(rec, httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(`{"mode":"clean"}`)))

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- GetRun ---

func TestGetRun_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().Get(mock.Anything, "abc").Return(validRun("abc"), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/runs/abc", nil), map[string]string{"id": "abc"})
	h.GetRun(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.RunResponse](t, rec)
	if resp.ID != "abc" || len(resp.Results) != 2 {
		t.Errorf("response = %+v", resp)
	}
}

func TestGetRun_Table(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().Get(mock.Anything, "abc").Return(validRun("abc"), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/runs/abc?format=table", nil), map[string]string{"id": "abc"})
	h.GetRun(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	body := rec.Body.Bytes()
	for _, want := range []string{"scope-fail", "Total time: 3.000 ms"} {
		if !bytes.Contains(body, []byte(want)) {
			t.Errorf("table missing %q:\n%s", want, body)
		}
	}
}

func TestGetRun_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newRunHandler(t)

	svc.EXPECT().Get(mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/runs/nope", nil), map[string]string{"id": "nope"})
	h.GetRun(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetRun_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newRunHandler(t)

	rec := httptest.NewRecorder()
	h.GetRun(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/runs/", nil), map[string]string{"id": " "}))

	requireStatus(t, rec, http.StatusBadRequest)
}
