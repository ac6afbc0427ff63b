package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server. Clients emit "join"
// with their user id to subscribe to their own swap lifecycle events.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("Invalid userId in join request")
			return
		}
		log.Printf("Socket %s joined room %s\n", c.ID(), userID)
		c.Join(userID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return server
}

// Hub broadcasts swap lifecycle events to user rooms
type Hub struct {
	Server *socketio.Server
}

// NotifySwapEvent pushes an event to every connection in the user's room
func (h *Hub) NotifySwapEvent(userID, event string, payload interface{}) {
	h.Server.BroadcastToRoom("/", userID, event, payload)
}
