package live

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func TestRaceRoomName(t *testing.T) {
	if got := RaceRoom(42); got != "corrida:42" {
		t.Errorf("expected corrida:42, got %s", got)
	}
}

func TestHubBroadcastToRoom(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(logger)
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		client := NewClient(hub, conn, RaceRoom(7))
		hub.Register <- client
		go client.WritePump()
		go client.ReadPump()
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// O registro passa pelo loop do hub; espera até a sala existir.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.RLock()
		registered := len(hub.rooms[RaceRoom(7)]) == 1
		hub.mu.RUnlock()
		if registered {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client was not registered in time")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Mensagem de outra sala não deve chegar.
	hub.BroadcastToRoom(RaceRoom(99), Message{Type: EventResultCreated, Payload: "other"})
	hub.BroadcastToRoom(RaceRoom(7), Message{Type: EventResultCreated, Payload: "mine"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.Type != EventResultCreated {
		t.Errorf("expected type %s, got %s", EventResultCreated, msg.Type)
	}
	if msg.Room != RaceRoom(7) {
		t.Errorf("expected room %s, got %s", RaceRoom(7), msg.Room)
	}
	if msg.Payload != "mine" {
		t.Errorf("expected payload from own room, got %v", msg.Payload)
	}
}
