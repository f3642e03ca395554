package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/table-booking/utils"
)

// Event types
const (
	EventTableCreate     = "table_create"
	EventTableUpdate     = "table_update"
	EventTableDelete     = "table_delete"
	EventBookingCreate   = "booking_create"
	EventBookingCancel   = "booking_cancel"
	EventDashboardUpdate = "dashboard_update"
)

// writeWait membatasi lama satu write ke client
const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Conn adalah bagian dari *websocket.Conn yang dipakai hub.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type deadlineSetter interface {
	SetWriteDeadline(t time.Time) error
}

// BoardHub menampung semua client papan meja (staff, host) untuk broadcast
type BoardHub struct {
	clients map[Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewBoardHub() *BoardHub {
	return &BoardHub{clients: make(map[Conn]string)}
}

// RegisterClient -> menambahkan connection ke set dengan role
func (h *BoardHub) RegisterClient(conn Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func (h *BoardHub) UnregisterClient(conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	conn.Close()
}

func (h *BoardHub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Broadcast sends msg to every client. Clients that fail a write, or do not
// accept it within writeWait, are dropped.
func (h *BoardHub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling board message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, role := range h.clients {
		if d, ok := conn.(deadlineSetter); ok {
			d.SetWriteDeadline(time.Now().Add(writeWait))
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending %s to %s client: %v", msg.Event, role, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
	utils.InfoLogger.Debugf("Broadcast %s to %d clients", msg.Event, len(h.clients))
}
