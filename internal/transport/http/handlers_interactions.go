package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"complyhub/internal/interactions"
	"complyhub/pkg/platform/httputil"
	"complyhub/pkg/requestcontext"
)

//go:generate mockgen -source=handlers_interactions.go -destination=mocks/interactions-mocks.go -package=mocks InteractionService

// InteractionService defines the node operations exposed over HTTP.
type InteractionService interface {
	Descriptors() []interactions.Descriptor
	Describe(name string) (interactions.Descriptor, error)
	Run(ctx context.Context, name string, attrs map[string]string) (interactions.Execution, error)
}

// RunRequest is the body of POST /interactions/{name}/run.
type RunRequest struct {
	Attributes map[string]string `json:"attributes"`
}

// Handler is the thin HTTP layer over the interaction service.
type Handler struct {
	service InteractionService
	logger  *slog.Logger
}

func NewHandler(service InteractionService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts the interaction endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/interactions", h.handleList)
	r.Get("/interactions/{name}", h.handleDescribe)
	r.Post("/interactions/{name}/run", h.handleRun)
}

func (h *Handler) handleList(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Descriptors())
}

func (h *Handler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Describe(chi.URLParam(r, "name"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

// handleRun always answers 200 once the node ran; the node's own outcome is in
// the execution's branch and error.
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	req, err := httputil.DecodeJSON[RunRequest](r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid run request",
			"request_id", requestcontext.RequestID(ctx),
			"node", name,
			"error", err,
		)
		httputil.WriteError(w, http.StatusBadRequest, "bad_request", "request body must be JSON")
		return
	}
	if req.Attributes == nil {
		req.Attributes = map[string]string{}
	}

	exec, err := h.service.Run(ctx, name, req.Attributes)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, exec)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, interactions.ErrUnknownNode) {
		httputil.WriteError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	h.logger.ErrorContext(r.Context(), "interaction request failed",
		"request_id", requestcontext.RequestID(r.Context()),
		"error", err,
	)
	httputil.WriteError(w, http.StatusInternalServerError, "internal_error", "")
}
