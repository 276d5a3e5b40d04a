package server

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/priyam/huehand/internal/app"
	"github.com/priyam/huehand/internal/finger"
	"github.com/priyam/huehand/internal/palette"
)

func TestColorFeed_PublishNoClients(t *testing.T) {
	feed := NewColorFeed(slog.Default())

	// Must not panic or block.
	feed.Publish(app.Update{Entry: palette.Default().ForFinger(finger.Thumb)})

	if feed.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", feed.ClientCount())
	}
}

func TestColorFeed_PublishToClient(t *testing.T) {
	feed := NewColorFeed(slog.Default())

	ts := httptest.NewServer(feed)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	// Wait for the server side to register the connection.
	deadline := time.Now().Add(2 * time.Second)
	for feed.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	update := app.Update{
		Entry:   palette.Default().ForFinger(finger.Index),
		Changed: true,
		Raised:  []string{"index"},
	}
	feed.Publish(update)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}

	var got app.Update
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("unmarshal update: %v", err)
	}
	if got.Entry.ID != 2 || !got.Changed {
		t.Errorf("update = %+v, want entry 2, changed", got)
	}
	if len(got.Raised) != 1 || got.Raised[0] != "index" {
		t.Errorf("raised = %v, want [index]", got.Raised)
	}
}

func TestColorFeed_ClientDisconnect(t *testing.T) {
	feed := NewColorFeed(slog.Default())

	ts := httptest.NewServer(feed)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for feed.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	conn.Close()

	deadline = time.Now().Add(2 * time.Second)
	for feed.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never deregistered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
