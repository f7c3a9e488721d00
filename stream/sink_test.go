package stream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conebreaker/game"
)

func TestSinkPush(t *testing.T) {
	var received sinkFrame
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := NewSink(server.URL)
	frame := PackFrame(9, game.PhaseLost, []game.RGB{{R: 1, G: 2, B: 3}})

	if err := sink.Push(frame); err != nil {
		t.Fatalf("Failed to push frame: %v", err)
	}

	if received.Tick != 9 {
		t.Errorf("Expected tick 9, got %d", received.Tick)
	}
	if received.Phase != "lost" {
		t.Errorf("Expected phase %q, got %q", "lost", received.Phase)
	}
	if len(received.Colors) != 3 || received.Colors[2] != 3 {
		t.Errorf("Expected packed colors [1 2 3], got %v", received.Colors)
	}
}

func TestSinkPushNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sink := NewSink(server.URL)
	if err := sink.Push(PackFrame(1, game.PhasePlaying, nil)); err != nil {
		t.Errorf("Expected 204 to count as success, got %v", err)
	}
}

func TestSinkPushControllerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	sink := NewSink(server.URL)
	if err := sink.Push(PackFrame(1, game.PhasePlaying, nil)); err == nil {
		t.Error("Expected an error for a 500 response, got none")
	}
}

func TestSinkPushUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	sink := NewSink(server.URL)
	if err := sink.Push(PackFrame(1, game.PhasePlaying, nil)); err == nil {
		t.Error("Expected an error for an unreachable controller, got none")
	}
}
