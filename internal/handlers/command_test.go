package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	d := &world.Definition{
		Name:  "manor",
		Intro: "A storm strands you at the old manor. Play on?",
		Start: "study",
		Locations: map[string]world.LocationDef{
			"study": {
				Description: "A dusty study.",
				Exits:       map[string]string{"north": "vault"},
				Items:       []world.ItemDef{{Name: "key"}},
			},
			"vault": {
				Description: "The vault glitters.",
				Exits:       map[string]string{"south": "study"},
			},
		},
	}
	w, err := world.Build(d)
	require.NoError(t, err)
	return engine.New(w, nil, testLogger())
}

func TestCommandHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful command",
			method:         http.MethodPost,
			body:           CommandRequest{SessionID: "s1", Input: "yes"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			body:           nil,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed. Only POST is supported at /v1/command.",
		},
		{
			name:           "invalid JSON body",
			method:         http.MethodPost,
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body. Expected JSON with 'session_id' and 'input' fields.",
		},
		{
			name:           "empty session id",
			method:         http.MethodPost,
			body:           CommandRequest{Input: "look"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request: session_id cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCommandHandler(testEngine(t), storage.NewMockStorage(), testLogger())

			var body bytes.Buffer
			if tt.body != nil {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.body))
			}
			req := httptest.NewRequest(tt.method, "/v1/command", &body)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var errResp ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
			}
		})
	}
}

func postCommand(t *testing.T, handler *CommandHandler, sessionID, input string) engine.Result {
	t.Helper()
	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(CommandRequest{SessionID: sessionID, Input: input}))
	req := httptest.NewRequest(http.MethodPost, "/v1/command", &body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	return result
}

func TestCommandHandler_PlayTurn(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewCommandHandler(testEngine(t), store, testLogger())

	result := postCommand(t, handler, "s1", "yes")
	assert.Equal(t, session.StatePlaying, result.State)
	assert.Contains(t, result.Message, "A dusty study.")
	assert.Equal(t, []string{"north"}, result.Directions)

	result = postCommand(t, handler, "s1", "take key")
	assert.Contains(t, result.Message, "Key taken.")
	assert.Equal(t, "key", result.Highlight)

	// Each turn persists the snapshot.
	snap, err := store.LoadSession(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "study", snap.Location)
	assert.Equal(t, []string{"key"}, snap.Inventory)
}

func TestCommandHandler_RestoresFromStorage(t *testing.T) {
	store := storage.NewMockStorage()

	// First process: play a little, snapshots accumulate in storage.
	handler := NewCommandHandler(testEngine(t), store, testLogger())
	postCommand(t, handler, "s1", "yes")
	postCommand(t, handler, "s1", "take key")
	postCommand(t, handler, "s1", "go north")

	// Second process: fresh engine, same storage.
	handler2 := NewCommandHandler(testEngine(t), store, testLogger())
	result := postCommand(t, handler2, "s1", "look")
	assert.Equal(t, session.StatePlaying, result.State)
	assert.Contains(t, result.Message, "The vault glitters.")

	result = postCommand(t, handler2, "s1", "inventory")
	assert.Contains(t, result.Message, "key")
}

func TestCommandHandler_QuitDeletesPersistedSession(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewCommandHandler(testEngine(t), store, testLogger())

	postCommand(t, handler, "s1", "yes")
	postCommand(t, handler, "s1", "quit")
	result := postCommand(t, handler, "s1", "yes")
	assert.Equal(t, session.StateWaitingForStartAnswer, result.State)

	snap, err := store.LoadSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, snap)
}
