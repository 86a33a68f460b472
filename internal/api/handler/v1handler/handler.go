// Package v1handler implements the v1 HTTP endpoints of the domain tree API.
// Request and response bodies are encoded with jx; service errors are mapped
// to HTTP status codes by their semantic kind.
package v1handler

import (
	"context"
	"net/http"
	"recond/internal/recon"
	"recond/pkg/logger"
	"recond/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps carries the services the handlers delegate to.
type Deps struct {
	Recon recon.Recon
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the v1 endpoints on mux. Patterns carry the /v1 prefix so
// the mux can be mounted at /v1/ directly.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("PUT /v1/targets/{targetID}/root-domains", h.ReconcileRootDomains)
	mux.HandleFunc("GET /v1/targets/{targetID}/root-domains", h.ListRootDomains)
	mux.HandleFunc("DELETE /v1/targets/{targetID}/root-domains", h.DeleteRootDomains)
	mux.HandleFunc("POST /v1/targets/{targetID}/root-domains/{rootDomain}/discoveries", h.SubmitDiscoveries)
	mux.HandleFunc("POST /v1/targets/{targetID}/subdomains", h.UploadSubdomains)
	mux.HandleFunc("DELETE /v1/targets/{targetID}/subdomains", h.DeleteSubdomains)
}

// statusOf maps a service error to the HTTP status of the response.
func statusOf(err error) int {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a service error as a JSON error body.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("error")
	e.Str(err.Error())
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeJSON renders an encoded body with the given status.
func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
