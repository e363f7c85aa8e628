// Package httpapi is the thin inbound routing layer: path dispatch, CORS
// headers, and JSON formatting around the verification service. No
// verification logic lives here.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sufield/signet/internal/domain"
	"github.com/sufield/signet/internal/ports"
)

// Server exposes the verification service over HTTP.
type Server struct {
	svc ports.VerificationService
	log *slog.Logger
}

// New creates the HTTP adapter. A nil logger falls back to slog.Default().
func New(svc ports.VerificationService, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, log: log}
}

// Router builds the route table:
//
//	GET /verify/{identifier}   run a verification, return the signed approval
//	GET /view/{key}            raw ledger passthrough ({key, value:false} if absent)
//	GET /count                 global distinct-gateway counter
//	GET /history/{identifier}  the identifier's audit entries
//	GET /healthz               liveness probe
//
// OPTIONS succeeds for any path (preflight). Any other GET path is 400 Bad
// Request; any other method is 405.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(responseHeaders)

	r.Get("/verify/{identifier}", s.handleVerify)
	r.Get("/view/{key}", s.handleView)
	r.Get("/count", s.handleCount)
	r.Get("/history/{identifier}", s.handleHistory)
	r.Get("/healthz", s.handleHealthz)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusBadRequest, errorPayload{Error: "Bad Request"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		s.writeJSON(w, http.StatusMethodNotAllowed, errorPayload{
			Error: fmt.Sprintf("Method %s not allowed", req.Method),
		})
	})

	return r
}

type errorPayload struct {
	Error string `json:"error"`
}

type viewPayload struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type countPayload struct {
	Count uint64 `json:"count"`
}

type healthPayload struct {
	Status string `json:"status"`
}

type historyPayload struct {
	Identifier string               `json:"identifier"`
	History    []domain.IndexRecord `json:"history"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	result, err := s.svc.Verify(r.Context(), identifier)
	if err != nil {
		s.log.Warn("verification failed", "identifier", identifier, "error", err)
		s.writeJSON(w, statusFor(err), errorPayload{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	key := domain.NormalizeIdentifier(chi.URLParam(r, "key"))

	raw, found, err := s.svc.View(r.Context(), key)
	if err != nil {
		s.log.Error("view lookup failed", "key", key, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorPayload{Error: "storage unavailable"})
		return
	}
	value := json.RawMessage("false")
	if found {
		value = json.RawMessage(raw)
	}
	s.writeJSON(w, http.StatusOK, viewPayload{Key: key, Value: value})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.svc.Count(r.Context())
	if err != nil {
		s.log.Error("count lookup failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorPayload{Error: "storage unavailable"})
		return
	}
	s.writeJSON(w, http.StatusOK, countPayload{Count: count})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	identifier := domain.NormalizeIdentifier(chi.URLParam(r, "identifier"))

	history, err := s.svc.History(r.Context(), identifier)
	if err != nil {
		s.log.Error("history lookup failed", "identifier", identifier, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorPayload{Error: "storage unavailable"})
		return
	}
	if history == nil {
		history = []domain.IndexRecord{}
	}
	s.writeJSON(w, http.StatusOK, historyPayload{Identifier: identifier, History: history})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthPayload{Status: "ok"})
}

// writeJSON emits the uniform two-space-indented JSON body every endpoint
// uses; the shared headers are set by the responseHeaders middleware.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.log.Error("response encoding failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.log.Error("write error", "error", err)
	}
}

// responseHeaders applies the CORS and caching headers every response
// carries. The surface is read-only and public, so any origin may call it.
func responseHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Allow", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Content-Type", "application/json")
		h.Set("Cache-Control", "no-cache")

		// Preflight requests succeed for any path, before routing.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusFor maps the verification error taxonomy onto HTTP statuses. Each
// failure kind stays distinguishable on the wire rather than collapsing to
// one catch-all status.
func statusFor(err error) int {
	var upstream *domain.UpstreamStatusError
	switch {
	case errors.Is(err, domain.ErrDeclarationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMalformedDeclaration):
		return http.StatusBadGateway
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrUpstreamUnreachable):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
