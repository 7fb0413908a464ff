package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulta/internal/classifier"
	"consulta/internal/identifier"
	"consulta/internal/lookup"
	"consulta/internal/registry/pipeline"
	"consulta/internal/registry/records"
	dErrors "consulta/pkg/domain-errors"
)

// fakeService scripts the engine behind the HTTP layer.
type fakeService struct {
	resolveRec records.Record
	resolveErr error
	outcome    lookup.Outcome
	bulk       lookup.BulkResult

	gotType identifier.Type
	gotRaw  string
}

func (f *fakeService) Classify(text string) identifier.Classification {
	return classifier.Classify(text)
}

func (f *fakeService) Resolve(_ context.Context, t identifier.Type, raw string) (records.Record, error) {
	f.gotType, f.gotRaw = t, raw
	return f.resolveRec, f.resolveErr
}

func (f *fakeService) AutoDetect(_ context.Context, _ string) lookup.Outcome {
	return f.outcome
}

func (f *fakeService) BulkLookup(_ context.Context, texts []string, _ int) lookup.BulkResult {
	f.bulk.Outcomes = make([]lookup.Outcome, len(texts))
	return f.bulk
}

func newTestRouter(svc Service) chi.Router {
	r := chi.NewRouter()
	New(svc, nil).Register(r)
	return r
}

func doRequest(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestResolveEndpointOK(t *testing.T) {
	svc := &fakeService{
		resolveRec: records.CNPJ{CNPJ: "00000000000191", RazaoSocial: "BANCO DO BRASIL SA", CheckedAt: time.Now()},
	}
	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/v1/cnpj/00000000000191", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identifier.TypeCNPJ, svc.gotType)
	assert.Equal(t, "00000000000191", svc.gotRaw)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BANCO DO BRASIL SA", body["razao_social"])
}

func TestResolveEndpointStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", dErrors.New(dErrors.CodeNotFound, "no record"), http.StatusNotFound},
		{"invalid", dErrors.New(dErrors.CodeInvalidIdentifier, "bad_checksum"), http.StatusUnprocessableEntity},
		{"timeout", dErrors.New(dErrors.CodeTimeout, "all sources timed out"), http.StatusGatewayTimeout},
		{"unavailable", dErrors.New(dErrors.CodeUnavailable, "all sources failed"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{resolveErr: tt.err}
			rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/v1/cpf/00000000000", "")
			assert.Equal(t, tt.want, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestEveryTypeHasAResolveRoute(t *testing.T) {
	svc := &fakeService{resolveRec: records.CEP{CEP: "01310100"}}
	router := newTestRouter(svc)

	for _, path := range []string{
		"/v1/cnpj/x", "/v1/cpf/x", "/v1/cep/x", "/v1/phone/x",
		"/v1/email/x", "/v1/domain/x", "/v1/plate/x",
	} {
		rec := doRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestClassifyEndpoint(t *testing.T) {
	rec := doRequest(t, newTestRouter(&fakeService{}), http.MethodGet, "/v1/classify?q=01310-100", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cep", body["type"])
	assert.Equal(t, "01310100", body["normalized"])
}

func TestClassifyEndpointMissingQuery(t *testing.T) {
	rec := doRequest(t, newTestRouter(&fakeService{}), http.MethodGet, "/v1/classify", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupEndpoint(t *testing.T) {
	svc := &fakeService{outcome: lookup.Outcome{
		Query:  "01310100",
		Type:   identifier.TypeCEP,
		Status: pipeline.StatusResolved,
	}}
	rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/v1/lookup", `{"query": "01310-100"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLookupEndpointRejectedOutcomeStatus(t *testing.T) {
	svc := &fakeService{outcome: lookup.Outcome{
		Query:  "00000000000192",
		Type:   identifier.TypeCNPJ,
		Status: pipeline.StatusRejected,
		Error:  "bad_checksum",
		Err:    dErrors.New(dErrors.CodeInvalidIdentifier, "bad_checksum"),
	}}

	rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/v1/lookup", `{"query": "00000000000192"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLookupEndpointBadBody(t *testing.T) {
	for _, body := range []string{"", "{}", "not json"} {
		rec := doRequest(t, newTestRouter(&fakeService{}), http.MethodPost, "/v1/lookup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestBulkEndpoint(t *testing.T) {
	svc := &fakeService{bulk: lookup.BulkResult{RunID: "run-1"}}
	rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/v1/bulk", `{"queries": ["a", "b"], "concurrency": 2}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body lookup.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "run-1", body.RunID)
	assert.Len(t, body.Outcomes, 2)
}

func TestBulkEndpointRejectsBadBatches(t *testing.T) {
	router := newTestRouter(&fakeService{})

	rec := doRequest(t, router, http.MethodPost, "/v1/bulk", `{"queries": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	queries := make([]string, maxBulkQueries+1)
	for i := range queries {
		queries[i] = "x"
	}
	big, err := json.Marshal(map[string]any{"queries": queries})
	require.NoError(t, err)
	rec = doRequest(t, router, http.MethodPost, "/v1/bulk", string(big))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
