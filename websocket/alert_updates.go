package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// AlertUpdate represents a real-time alert or notification event
type AlertUpdate struct {
	Type      string      `json:"type"` // ALERT_CREATED, NOTIFICATION_CREATED
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Sender    string      `json:"sender,omitempty"`
}

// broadcast sends an update to all connected clients
func broadcast(update AlertUpdate) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Failed to marshal alert update: %v", err)
		return
	}

	for c := range hub.clients {
		select {
		case c.send <- data:
		default:
			close(c.send)
			delete(hub.clients, c)
		}
	}
}

// SendAlertCreated broadcasts a newly persisted alert
func SendAlertCreated(alert interface{}, sender string) {
	broadcast(AlertUpdate{
		Type:      "ALERT_CREATED",
		Data:      alert,
		Timestamp: time.Now(),
		Sender:    sender,
	})
}

// SendNotificationCreated broadcasts a new employee notification
func SendNotificationCreated(notification interface{}, sender string) {
	broadcast(AlertUpdate{
		Type:      "NOTIFICATION_CREATED",
		Data:      notification,
		Timestamp: time.Now(),
		Sender:    sender,
	})
}
