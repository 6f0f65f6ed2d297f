// websocket/hub.go
package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards are served from other origins in dev
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type alertHub struct {
	mutex   sync.Mutex
	clients map[*client]bool
}

var hub = &alertHub{
	clients: make(map[*client]bool),
}

// ServeAlerts upgrades the connection and streams alert/notification
// events until the client disconnects.
func ServeAlerts(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}

	hub.mutex.Lock()
	hub.clients[c] = true
	hub.mutex.Unlock()

	log.Printf("WebSocket client connected: %s", conn.RemoteAddr())

	go c.writePump()
	go c.readPump()
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; the stream is push-only. Its real job
// is detecting disconnects so the client can be dropped from the hub.
func (c *client) readPump() {
	defer func() {
		hub.mutex.Lock()
		if _, ok := hub.clients[c]; ok {
			delete(hub.clients, c)
			close(c.send)
		}
		hub.mutex.Unlock()
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
