package stream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"conebreaker/game"
)

// Sink posts rendered frames to an LED controller over plain HTTP, for
// installations whose light driver exposes a POST endpoint instead of
// speaking WebSocket.
type Sink struct {
	url        string
	httpClient *http.Client
}

// sinkFrame is the request body for the controller endpoint. Colors is the
// packed RGB buffer; JSON carries it base64-encoded.
type sinkFrame struct {
	Tick   uint64 `json:"tick"`
	Phase  string `json:"phase"`
	Colors []byte `json:"colors"`
}

// NewSink creates a sink for the given endpoint URL. The timeout is short:
// a controller that cannot keep up should miss frames, not queue them.
func NewSink(url string) *Sink {
	return &Sink{
		url: url,
		httpClient: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

// Push posts one frame. Frames are independent, so callers normally log a
// failure and move on rather than retrying.
func (s *Sink) Push(frame Frame) error {
	body := sinkFrame{
		Tick:   frame.Tick,
		Phase:  game.Phase(frame.Phase).String(),
		Colors: frame.Colors,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}

	req, err := http.NewRequest("POST", s.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("controller error (status %d)", resp.StatusCode)
	}

	return nil
}
