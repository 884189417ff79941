package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"eventstay/internal/domain"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const EventOccupancy = "occupancy"

// OccupancyEvent is what subscribers see. The booking owner is not exposed.
type OccupancyEvent struct {
	Type            string `json:"type"`
	Change          string `json:"change"`
	HotelID         int64  `json:"hotelId"`
	RoomID          int64  `json:"roomId"`
	PreviousRoomID  int64  `json:"previousRoomId,omitempty"`
	PreviousHotelID int64  `json:"previousHotelId,omitempty"`
	OccurredAt      string `json:"occurredAt"`
}

type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
	hotels map[int64]bool
}

// Hub tracks websocket clients and the hotels each one watches.
type Hub struct {
	mu    sync.RWMutex
	conns map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*connection]struct{})}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; ok {
		delete(h.conns, c)
		close(c.send)
	}
}

func (h *Hub) subscribers(hotelID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.conns {
		if c.hotels[hotelID] {
			n++
		}
	}
	return n
}

// PublishBookingEvent pushes the change to every client watching the hotel
// the room is in, or the hotel a moved booking left. Slow clients are
// skipped rather than blocking the caller.
func (h *Hub) PublishBookingEvent(_ context.Context, ev domain.BookingEvent) error {
	data, err := json.Marshal(OccupancyEvent{
		Type:            EventOccupancy,
		Change:          string(ev.Type),
		HotelID:         ev.HotelID,
		RoomID:          ev.RoomID,
		PreviousRoomID:  ev.PreviousRoomID,
		PreviousHotelID: ev.PreviousHotelID,
		OccurredAt:      ev.OccurredAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns {
		if !c.hotels[ev.HotelID] && (ev.PreviousHotelID == 0 || !c.hotels[ev.PreviousHotelID]) {
			continue
		}
		select {
		case c.send <- data:
		default:
		}
	}
	return nil
}

// ServeWS registers conn and blocks until the client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64, hotels []int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
		hotels: make(map[int64]bool, len(hotels)),
	}
	for _, id := range hotels {
		c.hotels[id] = true
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd struct {
			Type    string `json:"type"`
			HotelID int64  `json:"hotelId"`
		}
		if err := json.Unmarshal(msg, &cmd); err != nil || cmd.HotelID <= 0 {
			continue
		}

		switch cmd.Type {
		case "subscribe":
			h.mu.Lock()
			c.hotels[cmd.HotelID] = true
			h.mu.Unlock()
		case "unsubscribe":
			h.mu.Lock()
			delete(c.hotels, cmd.HotelID)
			h.mu.Unlock()
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
