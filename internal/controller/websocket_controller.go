package controller

import (
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/middleware"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/websocket"
	"log/slog"
	"net/http"

	ws "github.com/gorilla/websocket"
)

type WebSocketController struct {
	hub *websocket.Hub
}

func NewWebSocketController(hub *websocket.Hub) *WebSocketController {
	return &WebSocketController{
		hub: hub,
	}
}

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades the connection and subscribes the caller to the domain
// event feed.
func (c *WebSocketController) ServeWS(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserContext)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket", "error", err)
		return
	}

	client := &websocket.Client{
		Hub:    c.hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userContext.ID,
	}

	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
