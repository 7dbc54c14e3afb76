// Package live transmite eventos de resultados por websocket, com uma sala
// por corrida.
package live

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

const (
	EventResultCreated = "RESULT_CREATED"
	EventResultUpdated = "RESULT_UPDATED"
	EventResultDeleted = "RESULT_DELETED"
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Room    string      `json:"room_id,omitempty"`
}

// RaceRoom é o nome da sala que recebe os eventos de uma corrida.
func RaceRoom(raceID int) string {
	return fmt.Sprintf("corrida:%d", raceID)
}

type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	rooms  map[string]map[*Client]bool
	mu     sync.RWMutex
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.logger.Info("live client registered",
				slog.String("room", client.room),
				slog.Int("clients", len(h.rooms[client.room])))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if _, ok := clients[client]; ok {
					client.closeSend()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
					h.logger.Info("live client unregistered", slog.String("room", client.room))
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToRoom envia a mensagem para todos os clientes da sala. Clientes
// com o buffer de envio cheio são pulados, nunca bloqueiam o chamador.
func (h *Hub) BroadcastToRoom(room string, message Message) {
	message.Room = room

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal live message",
			slog.String("room", room), slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		client.mu.Lock()
		if !client.closed {
			select {
			case client.send <- data:
			default:
				h.logger.Warn("live client send buffer full, dropping message",
					slog.String("room", room))
			}
		}
		client.mu.Unlock()
	}
}
