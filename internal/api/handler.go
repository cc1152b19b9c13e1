// Package api exposes the scan engine as a small HTTP sidecar.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theopenlane/mailaudit/internal/scanner"
	"github.com/theopenlane/mailaudit/internal/types"
)

// scannerFactory builds a coordinator for one request; injectable for tests
type scannerFactory func(opts ...scanner.ScanOption) (*scanner.Scanner, error)

// Handler manages API endpoints
type Handler struct {
	maxBodySize int64
	scanTimeout time.Duration
	newScanner  scannerFactory
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"mailaudit"`
	Timestamp string `json:"timestamp" example:"2026-01-15T10:30:00Z"`
}

// ScanRequest represents a domain scan request. DKIMSelectors distinguishes
// an omitted list (probe the default selectors) from an explicitly empty one
// (skip DKIM probing, verdict Unknown).
type ScanRequest struct {
	Domains        []string  `json:"domains" description:"Domains to evaluate, one result per entry"`
	DKIMSelectors  *[]string `json:"dkim_selectors,omitempty" description:"Ordered DKIM selector candidates"`
	Workers        int       `json:"workers,omitempty" description:"Worker pool size, default 10"`
	Nameserver     string    `json:"nameserver,omitempty" description:"DNS nameserver override"`
	TimeoutSeconds float64   `json:"timeout_seconds,omitempty" description:"Per-query DNS timeout in seconds"`
}

// handleHealth returns service health status
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "mailaudit",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleScan runs a full scan for the domains in the request body and
// returns the complete report
func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var req ScanRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if len(req.Domains) == 0 {
		writeError(w, http.StatusBadRequest, errCodeValidation, ErrDomainsRequired.Error())
		return
	}

	s, err := h.newScanner(h.scanOptions(req)...)
	if err != nil {
		log.Error().Err(err).Msg("failed to build scanner")
		writeError(w, http.StatusInternalServerError, errCodeInternal, "failed to initialize scan")

		return
	}

	ctx := r.Context()
	if h.scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.scanTimeout)

		defer cancel()
	}

	report, err := s.Scan(ctx, req.Domains)
	if err != nil {
		log.Error().Err(err).Msg("scan failed")
		writeError(w, http.StatusInternalServerError, errCodeInternal, "scan failed")

		return
	}

	writeJSON(w, http.StatusOK, report)
}

// scanOptions translates request overrides into coordinator options
func (h *Handler) scanOptions(req ScanRequest) []scanner.ScanOption {
	opts := []scanner.ScanOption{
		scanner.WithProgress(func(p types.Progress) {
			log.Debug().
				Str("domain", p.Domain).
				Int("completed", p.Completed).
				Int("total", p.Total).
				Msg("scan progress")
		}),
	}

	if req.Workers > 0 {
		opts = append(opts, scanner.WithWorkers(req.Workers))
	}

	if req.Nameserver != "" {
		opts = append(opts, scanner.WithNameserver(req.Nameserver))
	}

	if req.TimeoutSeconds > 0 {
		opts = append(opts, scanner.WithQueryTimeout(time.Duration(req.TimeoutSeconds*float64(time.Second))))
	}

	if req.DKIMSelectors != nil {
		selectors := *req.DKIMSelectors
		if selectors == nil {
			selectors = []string{}
		}

		opts = append(opts, scanner.WithSelectors(selectors))
	}

	return opts
}
