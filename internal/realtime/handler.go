package realtime

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"eventstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

type Handler struct {
	hub  *Hub
	auth Authenticator
}

func NewHandler(hub *Hub, auth Authenticator) *Handler {
	return &Handler{hub: hub, auth: auth}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/rooms", h.HandleWebSocket)
}

// HandleWebSocket streams occupancy changes.
//
// Endpoint: GET /ws/rooms?token=JWT&hotelId=1,2
//
// Browsers cannot set headers on a websocket handshake, so the token comes
// in the query string. More hotels can be added with
// {"type":"subscribe","hotelId":N}.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required")
		return
	}

	userID, err := h.auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	hotels, ok := parseHotelIDs(c.Query("hotelId"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hotelId must be a comma separated list of ids")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed user_id=%d error=%q", userID, err)
		return
	}

	h.hub.ServeWS(conn, userID, hotels)
}

func parseHotelIDs(raw string) ([]int64, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
