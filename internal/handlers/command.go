package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/session"
)

// CommandRequest is one line of player input for a session.
type CommandRequest struct {
	SessionID string `json:"session_id"`
	Input     string `json:"input"`
}

// CommandHandler routes player input through the engine.
// Routes:
// POST /v1/command - Process one line of input
type CommandHandler struct {
	engine  *engine.Engine
	storage storage.Storage
	logger  *slog.Logger
}

func NewCommandHandler(eng *engine.Engine, storage storage.Storage, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{
		engine:  eng,
		storage: storage,
		logger:  logger,
	}
}

func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported at /v1/command.")
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'session_id' and 'input' fields.")
		return
	}
	if req.SessionID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request: session_id cannot be empty")
		return
	}

	// A session unknown to the engine may still exist in storage, for
	// example after a process restart.
	if _, live := h.engine.Snapshot(req.SessionID); !live {
		snap, err := h.storage.LoadSession(r.Context(), req.SessionID)
		if err != nil {
			h.logger.Error("Failed to load persisted session", "session_id", req.SessionID, "error", err)
		} else if snap != nil {
			if err := h.engine.Restore(snap); err != nil {
				h.logger.Warn("Failed to restore persisted session", "session_id", req.SessionID, "error", err)
			} else {
				h.logger.Info("Session restored from storage", "session_id", req.SessionID)
			}
		}
	}

	result := h.engine.ProcessInput(req.SessionID, req.Input)
	h.persist(r, req.SessionID, result)

	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("Failed to encode command response", "error", err)
	}
}

// persist saves the session snapshot after the turn, best effort: a
// storage failure never fails the command.
func (h *CommandHandler) persist(r *http.Request, sessionID string, result engine.Result) {
	snap, ok := h.engine.Snapshot(sessionID)
	if !ok {
		// The session ended this turn.
		if result.State == session.StateWaitingForStartAnswer {
			if err := h.storage.DeleteSession(r.Context(), sessionID); err != nil {
				h.logger.Error("Failed to delete persisted session", "session_id", sessionID, "error", err)
			}
		}
		return
	}
	if err := h.storage.SaveSession(r.Context(), snap); err != nil {
		h.logger.Error("Failed to persist session", "session_id", sessionID, "error", err)
	}
}
