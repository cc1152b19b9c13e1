package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theopenlane/mailaudit/internal/scanner"
	"github.com/theopenlane/mailaudit/internal/types"
)

// stubEvaluator returns canned results without touching the network
type stubEvaluator struct {
	failFor map[string]bool
	dkim    types.Status
}

func (s *stubEvaluator) CheckDomain(_ context.Context, domain string) (types.DomainResult, error) {
	if s.failFor[domain] {
		return types.DomainResult{}, errors.New("forced failure")
	}

	dkim := s.dkim
	if dkim == "" {
		dkim = types.StatusPass
	}

	return types.DomainResult{
		Domain:                     domain,
		SPF:                        types.StatusPass,
		DKIM:                       dkim,
		DMARC:                      types.StatusPass,
		VulnerableToSpoofing:       types.StatusNo,
		PotentialSubdomainTakeover: types.StatusUnknown,
	}, nil
}

// newTestRouter wires the router to a scanner backed by the stub evaluator
func newTestRouter(eval scanner.Evaluator) http.Handler {
	return NewRouter(RouterConfig{
		MaxBodySize: 100 * 1024,
		NewScanner: func(opts ...scanner.ScanOption) (*scanner.Scanner, error) {
			opts = append(opts, scanner.WithEvaluator(eval))
			return scanner.New(opts...)
		},
	})
}

func postScan(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/scan", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestHandleScan(t *testing.T) {
	handler := newTestRouter(&stubEvaluator{})

	rec := postScan(t, handler, `{"domains":["a.com","b.com"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.ScanReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))

	assert.NotEmpty(t, report.ScanID)
	assert.Len(t, report.Results, 2)

	for _, result := range report.Results {
		assert.Equal(t, types.StatusPass, result.SPF)
	}
}

func TestHandleScan_FailedDomainStillReported(t *testing.T) {
	handler := newTestRouter(&stubEvaluator{failFor: map[string]bool{"broken.com": true}})

	rec := postScan(t, handler, `{"domains":["a.com","broken.com"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.ScanReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	require.Len(t, report.Results, 2)

	statuses := map[string]types.Status{}
	for _, result := range report.Results {
		statuses[result.Domain] = result.SPF
	}

	assert.Equal(t, types.StatusPass, statuses["a.com"])
	assert.Equal(t, types.StatusError, statuses["broken.com"])
}

func TestHandleScan_EmptySelectorList(t *testing.T) {
	// an explicitly empty selector list must reach the evaluator as empty,
	// not fall back to the default candidates
	handler := NewRouter(RouterConfig{
		NewScanner: func(opts ...scanner.ScanOption) (*scanner.Scanner, error) {
			options := scanner.DefaultScanOptions()
			for _, opt := range opts {
				opt(options)
			}

			if options.Selectors == nil || len(options.Selectors) != 0 {
				return nil, errors.New("expected explicitly empty selector list")
			}

			opts = append(opts, scanner.WithEvaluator(&stubEvaluator{dkim: types.StatusUnknown}))

			return scanner.New(opts...)
		},
	})

	rec := postScan(t, handler, `{"domains":["a.com"],"dkim_selectors":[]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleScan_ValidationErrors(t *testing.T) {
	handler := newTestRouter(&stubEvaluator{})

	cases := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"no domains", `{"domains":[]}`},
		{"unknown field", `{"domains":["a.com"],"bogus":true}`},
		{"trailing object", `{"domains":["a.com"]}{"domains":["b.com"]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postScan(t, handler, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var apiErr Error
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
			assert.NotEmpty(t, apiErr.Code)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	handler := newTestRouter(&stubEvaluator{})

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "mailaudit", health.Service)
}
