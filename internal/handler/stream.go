package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/handler/dto"
	"github.com/stpnv0/mari-gunting/internal/notification"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamBookings pushes committed booking snapshots over a websocket.
// Customers and partners only ever see their own bookings.
func (h *Handler) StreamBookings(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	filter := streamFilter(actor, notification.Filter{
		BookingID:  c.Query("booking_id"),
		CustomerID: c.Query("customer_id"),
		PartnerID:  c.Query("partner_id"),
	})

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("websocket upgrade failed", logger.String("error", err.Error()))
		return
	}

	sub := h.stream.Subscribe(filter)
	h.logger.Debug("booking stream opened",
		logger.String("actor", actor.ID),
		logger.String("role", string(actor.Role)),
	)

	go h.writePump(conn, sub)
	readPump(conn)

	sub.Close()
}

func streamFilter(actor domain.Actor, f notification.Filter) notification.Filter {
	switch actor.Role {
	case domain.RoleCustomer:
		f.CustomerID = actor.ID
	case domain.RolePartner:
		f.PartnerID = actor.ID
	}
	return f
}

func (h *Handler) writePump(conn *websocket.Conn, sub *notification.Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case e, ok := <-sub.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(dto.ToBookingEventResponse(e)); err != nil {
				h.logger.Debug("booking stream write failed", logger.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; it returns once the peer goes away.
func readPump(conn *websocket.Conn) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
