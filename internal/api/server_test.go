// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/api"
	"github.com/taibuivan/catalog/internal/core/concept"
	"github.com/taibuivan/catalog/internal/core/field"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

type staticVerifier map[string]*sec.AuthClaims

func (v staticVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if claims, ok := v[token]; ok {
		return claims, nil
	}
	return nil, errors.New("unknown token")
}

type conceptStore struct {
	concepts []*concept.Concept
}

func (s *conceptStore) List(_ context.Context, filter concept.Filter, _ concept.Order) ([]*concept.Concept, error) {
	out := make([]*concept.Concept, 0)
	for _, c := range s.concepts {
		if !filter.PublishedOnly || c.Published {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *conceptStore) GetByID(_ context.Context, id int64, filter concept.Filter) (*concept.Concept, error) {
	for _, c := range s.concepts {
		if c.ID == id && (!filter.PublishedOnly || c.Published) {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Concept")
}

func (s *conceptStore) ListFields(context.Context, []int64) (map[int64][]concept.ConceptField, error) {
	return map[int64][]concept.ConceptField{}, nil
}

type fieldStore struct{}

func (fieldStore) List(context.Context, field.Filter) ([]*field.Field, error) {
	return []*field.Field{{ID: 1, Name: "Age", Published: true}}, nil
}

func (fieldStore) GetByID(_ context.Context, id int64, _ field.Filter) (*field.Field, error) {
	if id == 1 {
		return &field.Field{ID: 1, Name: "Age", Published: true}, nil
	}
	return nil, apperr.NotFound("Field")
}

func newServer(t *testing.T, baseURL string) http.Handler {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{ServerPort: "0", Environment: "production", PublicBaseURL: baseURL, ExtraOrigins: "https://app.example.org"}

	store := &conceptStore{concepts: []*concept.Concept{
		{ID: 1, Name: "Sex", Published: true, Modified: time.Now()},
		{ID: 2, Name: "Draft", Published: false, Modified: time.Now()},
	}}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
	}, logger)

	verifier := staticVerifier{
		"curator": {UserID: "u-1", Role: string(sec.RoleCurator), Permissions: []string{constants.PermChangeConcept}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, logger, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Concept:   concept.NewHandler(concept.NewService(store, nil, logger), cfg.PublicBaseURL),
		Field:     field.NewHandler(field.NewService(fieldStore{}), cfg.PublicBaseURL),
	})
	return server.Handler()
}

func get(t *testing.T, handler http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		request.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_Routes exercises the full middleware chain against the mounted
resources.
*/
func TestServer_Routes(t *testing.T) {
	handler := newServer(t, "")

	tests := []struct {
		name       string
		target     string
		header     map[string]string
		wantStatus int
	}{
		{"concepts", "/api/v1/concepts", nil, http.StatusOK},
		{"concepts_trailing_slash", "/api/v1/concepts/", nil, http.StatusOK},
		{"concept", "/api/v1/concepts/1", nil, http.StatusOK},
		{"concept_hidden", "/api/v1/concepts/2", nil, http.StatusNotFound},
		{"concept_hidden_curator", "/api/v1/concepts/2", map[string]string{"Authorization": "Bearer curator"}, http.StatusOK},
		{"bad_token", "/api/v1/concepts", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
		{"bad_scheme", "/api/v1/concepts", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized},
		{"fields", "/api/v1/fields", nil, http.StatusOK},
		{"field", "/api/v1/fields/1", nil, http.StatusOK},
		{"unknown", "/api/v1/categories", nil, http.StatusNotFound},
		{"health", "/health", nil, http.StatusOK},
		{"ready", "/ready", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, handler, "http://catalog.test"+tt.target, tt.header)
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
			assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
		})
	}
}

func TestServer_PublicBaseURL(t *testing.T) {
	handler := newServer(t, "https://data.example.org")

	recorder := get(t, handler, "http://10.0.0.7:8080/api/v1/concepts/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload concept.Payload
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "https://data.example.org/api/v1/concepts/1", payload.Links.Self.Href)
}

func TestServer_PlainOptions(t *testing.T) {
	handler := newServer(t, "")

	request := httptest.NewRequest(http.MethodOptions, "http://catalog.test/api/v1/concepts", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, constants.ReadOnlyMethods, recorder.Header().Get(constants.HeaderAllow))
}

func TestServer_CORS(t *testing.T) {
	handler := newServer(t, "")

	recorder := get(t, handler, "http://catalog.test/api/v1/fields", map[string]string{"Origin": "https://app.example.org"})
	assert.Equal(t, "https://app.example.org", recorder.Header().Get("Access-Control-Allow-Origin"))

	recorder = get(t, handler, "http://catalog.test/api/v1/fields", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
