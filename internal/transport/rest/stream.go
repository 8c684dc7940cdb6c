package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/raulk/clock"

	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/internal/domain"
	"github.com/heartmarshall/keepit-backend/internal/service/notification"
	"github.com/heartmarshall/keepit-backend/pkg/ctxutil"
)

const streamReadLimit = 512

type channelRegistry interface {
	Subscribe(userID uuid.UUID) *notification.Channel
	Release(ch *notification.Channel) bool
}

// StreamHandler serves the live notification websocket.
type StreamHandler struct {
	registry channelRegistry
	clock    clock.Clock
	cfg      config.PushConfig
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewStreamHandler creates a StreamHandler. Callers authenticate with a
// token, so any origin may connect.
func NewStreamHandler(registry channelRegistry, clk clock.Clock, cfg config.PushConfig, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		registry: registry,
		clock:    clk,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: logger.With("handler", "stream"),
	}
}

// streamFrame is one JSON text message sent to the client.
type streamFrame struct {
	Event domain.EventKind `json:"event"`
	Data  any              `json:"data"`
}

type notificationFrame struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stream handles GET /api/v1/notifications/stream. The first frame is
// CONNECT; each dispatched notification follows as a NOTIFICATION frame.
// A newer connection of the same user replaces this one.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch := h.registry.Subscribe(userID)
	defer h.registry.Release(ch)

	ping := h.clock.Ticker(h.cfg.PingInterval)
	defer ping.Stop()

	var expire <-chan time.Time
	if h.cfg.StreamTimeout > 0 {
		timer := h.clock.Timer(h.cfg.StreamTimeout)
		defer timer.Stop()
		expire = timer.C
	}

	if err := h.write(conn, streamFrame{Event: domain.EventKindConnect, Data: "connected"}); err != nil {
		return
	}

	h.log.DebugContext(r.Context(), "stream opened", slog.String("user_id", userID.String()))

	readDone := make(chan struct{})
	go h.read(conn, readDone)

	for {
		select {
		case ev := <-ch.Events():
			frame := streamFrame{Event: ev.Kind, Data: notificationFrame{
				ID:        ev.NotificationID.String(),
				Message:   ev.Message,
				CreatedAt: ev.CreatedAt,
			}}
			if err := h.write(conn, frame); err != nil {
				h.log.DebugContext(r.Context(), "stream write failed", slog.String("error", err.Error()))
				return
			}
		case <-ch.Done():
			h.close(conn, websocket.CloseGoingAway, "channel closed")
			return
		case <-ping.C:
			deadline := time.Now().Add(h.cfg.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-expire:
			h.close(conn, websocket.CloseNormalClosure, "stream timeout")
			return
		case <-readDone:
			return
		}
	}
}

// Socket deadlines are compared with the wall clock by the runtime, so they
// come from time.Now; the injected clock only paces pings and the stream timeout.
func (h *StreamHandler) write(conn *websocket.Conn, frame streamFrame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}

func (h *StreamHandler) close(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(h.cfg.WriteTimeout))
}

// read discards client messages and extends the read deadline on every pong.
// It closes done when the connection fails or the client closes it.
func (h *StreamHandler) read(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	pongWait := 2 * h.cfg.PingInterval
	conn.SetReadLimit(streamReadLimit)
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
