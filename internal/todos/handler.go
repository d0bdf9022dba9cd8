package todos

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/platform/apierr"
	"github.com/taskhive/taskhive/internal/platform/httpx"
)

// Handler manages todo endpoints. It expects to be mounted behind the bearer
// auth middleware.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers todo routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listTodos)
	r.Post("/", h.createTodo)
	r.Route("/{todoID}", func(r chi.Router) {
		r.Get("/", h.getTodo)
		r.Put("/", h.updateTodo)
		r.Delete("/", h.deleteTodo)
	})
}

type listResponse struct {
	Todos []Todo `json:"todos"`
	Count int    `json:"count"`
}

type todoResponse struct {
	Todo *Todo `json:"todo"`
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, apierr.Unauthenticated("Authentication required"))
		return
	}
	items, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		h.logFailure("list todos", err)
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Todos: items, Count: len(items)})
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, apierr.Unauthenticated("Authentication required"))
		return
	}
	var input Input
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Error(w, err)
		return
	}
	todo, err := h.service.Create(r.Context(), ownerID, input)
	if err != nil {
		h.logFailure("create todo", err)
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, todoResponse{Todo: todo})
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, apierr.Unauthenticated("Authentication required"))
		return
	}
	id, err := parseTodoID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	todo, err := h.service.Get(r.Context(), ownerID, id)
	if err != nil {
		h.logFailure("get todo", err)
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, todoResponse{Todo: todo})
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, apierr.Unauthenticated("Authentication required"))
		return
	}
	id, err := parseTodoID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	var input Input
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Error(w, err)
		return
	}
	todo, err := h.service.Update(r.Context(), ownerID, id, input)
	if err != nil {
		h.logFailure("update todo", err)
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, todoResponse{Todo: todo})
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, apierr.Unauthenticated("Authentication required"))
		return
	}
	id, err := parseTodoID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), ownerID, id); err != nil {
		h.logFailure("delete todo", err)
		httpx.Error(w, err)
		return
	}
	httpx.Msg(w, http.StatusOK, "Todo deleted")
}

// parseTodoID reads the path id. An id that cannot be a UUID can never match
// a stored row, so malformed ids surface as NotFound rather than BadRequest.
func parseTodoID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "todoID"))
	if err != nil {
		return uuid.Nil, apierr.NotFound(notFoundMsg)
	}
	return id, nil
}

func (h *Handler) logFailure(op string, err error) {
	if apierr.Recognized(err) || h.logger == nil {
		return
	}
	h.logger.Error(op+" failed", slog.Any("error", err))
}
