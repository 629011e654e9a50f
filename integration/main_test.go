//go:build integration
// +build integration

// Package integration exercises a running API end to end. Start the API
// with data/world.yaml, then:
//
//	go test -tags integration ./integration/
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

var apiBaseURL string

func TestMain(m *testing.M) {
	apiBaseURL = os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080" // Default to localhost
	}

	fmt.Printf("Running Adventure Engine Integration Tests\n")
	fmt.Printf("   API Base URL: %s\n", apiBaseURL)

	os.Exit(m.Run())
}

type sessionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	State   string `json:"state"`
}

type commandResult struct {
	Message    string   `json:"message"`
	Highlight  string   `json:"highlight"`
	State      string   `json:"state"`
	Directions []string `json:"directions"`
}

func newClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func createSession(t *testing.T, client *http.Client) sessionResponse {
	t.Helper()
	resp, err := client.Post(apiBaseURL+"/v1/session", "application/json", nil)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create session returned status %d", resp.StatusCode)
	}

	var sess sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		t.Fatalf("Failed to decode session response: %v", err)
	}
	return sess
}

func sendCommand(t *testing.T, client *http.Client, sessionID, input string) commandResult {
	t.Helper()
	body, err := json.Marshal(map[string]string{"session_id": sessionID, "input": input})
	if err != nil {
		t.Fatalf("Failed to marshal command: %v", err)
	}

	resp, err := client.Post(apiBaseURL+"/v1/command", "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to send command %q: %v", input, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Command %q returned status %d", input, resp.StatusCode)
	}

	var result commandResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode command response: %v", err)
	}
	return result
}

func TestHealthEndpoint(t *testing.T) {
	client := newClient()
	resp, err := client.Get(apiBaseURL + "/health")
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Health returned status %d", resp.StatusCode)
	}
}

// TestManorPlaythrough runs a scripted game against data/world.yaml.
func TestManorPlaythrough(t *testing.T) {
	client := newClient()
	sess := createSession(t, client)
	if sess.State != "waiting_for_start_answer" {
		t.Fatalf("New session state = %q", sess.State)
	}

	steps := []struct {
		input        string
		wantState    string
		wantContains string
	}{
		{"yes", "playing", "dusty study"},
		{"take the key", "playing", "taken"},
		{"go north", "playing", "vault door swings open"},
		{"south", "playing", "dusty study"},
		{"take ladder", "playing", "taken"},
		{"put ladder on wall", "playing", "put the ladder on the wall"},
		{"go east", "waiting_for_unlock_code", "won't budge"},
		{"swordfish", "playing", "clicks open"},
		{"east", "playing", "damp cellar"},
		{"west", "playing", "dusty study"},
		{"quit", "waiting_for_quit_confirmation", "sure"},
		{"no", "playing", ""},
	}

	for _, step := range steps {
		result := sendCommand(t, client, sess.ID, step.input)
		if result.State != step.wantState {
			t.Fatalf("%q: state = %q, want %q (message: %s)", step.input, result.State, step.wantState, result.Message)
		}
		if step.wantContains != "" && !strings.Contains(strings.ToLower(result.Message), strings.ToLower(step.wantContains)) {
			t.Fatalf("%q: message %q does not contain %q", step.input, result.Message, step.wantContains)
		}
	}

	// Clean up the session.
	req, err := http.NewRequest(http.MethodDelete, apiBaseURL+"/v1/session/"+sess.ID, nil)
	if err != nil {
		t.Fatalf("Failed to build delete request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Delete session returned status %d", resp.StatusCode)
	}
}

// TestSessionPersistence verifies the snapshot a turn leaves behind can
// seed a later session with the same ID.
func TestSessionPersistence(t *testing.T) {
	client := newClient()
	sess := createSession(t, client)

	sendCommand(t, client, sess.ID, "yes")
	sendCommand(t, client, sess.ID, "take key")

	result := sendCommand(t, client, sess.ID, "inventory")
	if !strings.Contains(result.Message, "key") {
		t.Fatalf("Inventory missing key: %q", result.Message)
	}
}
