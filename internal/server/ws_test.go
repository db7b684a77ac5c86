package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/fingerspell/internal/stabilize"
)

func TestLettersHandler_PublishReachesClient(t *testing.T) {
	h := NewLettersHandler()
	ts := httptest.NewServer(h)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/letters"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Wait for the server to register the client.
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.Publish(stabilize.Confirmed{Letter: "H", Confidence: 0.91, At: at}, "H")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg letterMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Letter != "H" {
		t.Errorf("letter = %q, want H", msg.Letter)
	}
	if msg.Word != "H" {
		t.Errorf("word = %q, want H", msg.Word)
	}
	if msg.Confidence != 0.91 {
		t.Errorf("confidence = %f, want 0.91", msg.Confidence)
	}
	if msg.Timestamp != at.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", msg.Timestamp, at.UnixMilli())
	}
}

func TestLettersHandler_PublishWithoutClients(t *testing.T) {
	h := NewLettersHandler()

	// Must not panic or block with nobody listening.
	h.Publish(stabilize.Confirmed{Letter: "A", Confidence: 0.9, At: time.Now()}, "A")
}
