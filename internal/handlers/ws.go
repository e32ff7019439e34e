package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"airsense/internal/utils"
	"airsense/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveHandler handles GET /ws/live. Browsers cannot set headers on a
// websocket handshake, so the token travels as a query param.
type LiveHandler struct {
	JWTSecret string
}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token := q.Get("token")
	if token == "" {
		http.Error(w, "token required", http.StatusBadRequest)
		return
	}
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		http.Error(w, "invalid lat", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		http.Error(w, "invalid lon", http.StatusBadRequest)
		return
	}

	userID, err := utils.ParseJWT(token, h.JWTSecret)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	hub := ws.GetCellHub(lat, lon)
	c := &ws.Connection{
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
		Cell:   ws.CellKey(lat, lon),
	}
	hub.Register <- c

	go c.StartWrite()

	// Read loop exists only to notice the disconnect; clients send nothing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	hub.Unregister <- c
}
