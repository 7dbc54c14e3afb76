package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gfmartins/racing-system/live"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeRaceRoom faz o upgrade da conexão e inscreve o cliente na sala da
// corrida, onde chegam os eventos de resultados.
func (h *WebSocketHandler) ServeRaceRoom(w http.ResponseWriter, r *http.Request) {
	raceID, err := pathID(r, "id_corrida")
	if err != nil {
		badRequestResponse(w, r, "ID da corrida deve ser um número")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		return
	}

	client := live.NewClient(h.hub, conn, live.RaceRoom(raceID))
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
