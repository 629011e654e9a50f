package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/session"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionResponse is returned on session creation.
type SessionResponse struct {
	ID      string            `json:"id"`
	Message string            `json:"message"`
	State   session.GameState `json:"state"`
}

// SessionHandler creates and deletes play sessions.
// Routes:
// POST /v1/session          - Create a new session
// DELETE /v1/session/{id}   - End a session
type SessionHandler struct {
	engine  *engine.Engine
	storage storage.Storage
	logger  *slog.Logger
}

func NewSessionHandler(eng *engine.Engine, storage storage.Storage, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		engine:  eng,
		storage: storage,
		logger:  logger,
	}
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)

	case http.MethodDelete:
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/session"), "/")
		if id == "" {
			writeError(w, h.logger, http.StatusBadRequest, "Session ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, id)

	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST and DELETE are supported at /v1/session.")
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()

	response := SessionResponse{
		ID:      id,
		Message: h.engine.Intro(),
		State:   session.StateWaitingForStartAnswer,
	}

	h.logger.Info("Session created", "session_id", id)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	h.engine.EndSession(id)
	if err := h.storage.DeleteSession(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete persisted session", "session_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	h.logger.Info("Session deleted", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}
