package ws

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"airsense/internal/handlers/airquality"
)

// Connection represents a websocket subscriber for one location cell.
type Connection struct {
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string
	Cell   string
}

// CellHub holds the subscribers of one coordinate cell and pushes the
// placeholder reading to them on a ticker.
type CellHub struct {
	Cell string
	// Cell center; readings never echo a subscriber's exact position.
	Lat, Lon float64
	Conns      map[*Connection]bool
	Register   chan *Connection
	Unregister chan *Connection
	Broadcast  chan []byte
	mu         sync.Mutex
}

var (
	hubs   = make(map[string]*CellHub)
	hubsMu sync.Mutex
)

// CellKey buckets coordinates into 0.1 degree cells so nearby subscribers
// share a hub.
func CellKey(lat, lon float64) string {
	return fmt.Sprintf("%.1f:%.1f", math.Round(lat*10)/10, math.Round(lon*10)/10)
}

// GetCellHub returns the hub for the cell containing (lat, lon), creating it
// if necessary.
func GetCellHub(lat, lon float64) *CellHub {
	key := CellKey(lat, lon)
	hubsMu.Lock()
	defer hubsMu.Unlock()
	if h, ok := hubs[key]; ok {
		return h
	}
	h := &CellHub{
		Cell:       key,
		Lat:        math.Round(lat*10) / 10,
		Lon:        math.Round(lon*10) / 10,
		Conns:      make(map[*Connection]bool),
		Register:   make(chan *Connection),
		Unregister: make(chan *Connection),
		Broadcast:  make(chan []byte),
	}
	hubs[key] = h
	go h.run()
	return h
}

func (h *CellHub) run() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case c := <-h.Register:
			h.mu.Lock()
			h.Conns[c] = true
			h.mu.Unlock()
			// New subscriber gets a reading immediately.
			if b, err := json.Marshal(airquality.StaticReading(h.Lat, h.Lon)); err == nil {
				select {
				case c.Send <- b:
				default:
				}
			}
		case c := <-h.Unregister:
			h.mu.Lock()
			if h.Conns[c] {
				delete(h.Conns, c)
				close(c.Send)
			}
			h.mu.Unlock()
		case msg := <-h.Broadcast:
			h.send(msg)
		case <-ticker.C:
			b, err := json.Marshal(airquality.StaticReading(h.Lat, h.Lon))
			if err != nil {
				continue
			}
			h.send(b)
		}
	}
}

func (h *CellHub) send(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.Conns {
		select {
		case c.Send <- msg:
		default:
			// Slow consumer, drop it.
			delete(h.Conns, c)
			close(c.Send)
		}
	}
}

// StartWrite pumps the Send channel to the socket until it closes.
func (c *Connection) StartWrite() {
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	_ = c.Conn.Close()
}
