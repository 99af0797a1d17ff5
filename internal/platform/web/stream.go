package web

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/session"
)

const (
	pingInterval = 25 * time.Second
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	readLimit    = 1 << 16

	streamBuffer = 64
)

// Message types sent over the stream.
const (
	MessageSnapshot = "snapshot"
	MessageEvent    = "event"
)

// StreamMessage is one JSON frame of the snapshot stream.
type StreamMessage struct {
	Type       string         `json:"type"`
	Generation uint64         `json:"generation"`
	Snapshot   *core.Snapshot `json:"snapshot,omitempty"`
	Event      *core.Event    `json:"event,omitempty"`
	Closed     bool           `json:"closed,omitempty"`
}

var upgrader = websocket.Upgrader{
	// Browsers on other origins may watch; sessions are addressed by
	// unguessable IDs.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Stream upgrades to a WebSocket and streams the session's snapshot after
// every change, preceded by the events that change produced.
func (h *Handler) Stream(c *gin.Context) {
	id := c.Param("id")
	sess, unwatch, err := h.hub.Watch(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{jsonKeyError: errNotFound})
		return
	}
	defer unwatch()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.logger.Warn("upgrade failed", "session", id, "error", err)
		return
	}
	defer conn.Close()

	sub := sess.Subscribe(streamBuffer)
	defer sub.Close()

	logger := h.hub.logger.With("session", id)
	logger.Debug("stream opened", "remote", conn.RemoteAddr().String())

	// Clients only send control frames; the read loop keeps the deadline
	// fresh and notices when the peer goes away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadLimit(readLimit)
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	first := sess.Snapshot()
	if err := writeJSON(conn, StreamMessage{Type: MessageSnapshot, Generation: sess.Generation(), Snapshot: &first}); err != nil {
		logger.Debug("stream write failed", "error", err)
		return
	}

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case u := <-sub.Updates():
			if err := writeUpdate(conn, u); err != nil {
				logger.Debug("stream write failed", "error", err)
				return
			}
			if u.Closed {
				closeStream(conn, logger)
				return
			}

		case <-sub.Done():
			// Flush what the session published before it closed.
			for {
				select {
				case u := <-sub.Updates():
					if err := writeUpdate(conn, u); err != nil {
						return
					}
				default:
					closeStream(conn, logger)
					return
				}
			}

		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-gone:
			logger.Debug("stream closed by peer")
			return
		}
	}
}

func writeUpdate(conn *websocket.Conn, u session.Update) error {
	for i := range u.Events {
		msg := StreamMessage{Type: MessageEvent, Generation: u.Generation, Event: &u.Events[i]}
		if err := writeJSON(conn, msg); err != nil {
			return err
		}
	}
	snap := u.Snapshot
	return writeJSON(conn, StreamMessage{
		Type:       MessageSnapshot,
		Generation: u.Generation,
		Snapshot:   &snap,
		Closed:     u.Closed,
	})
}

func writeJSON(conn *websocket.Conn, msg StreamMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(msg)
}

func closeStream(conn *websocket.Conn, logger *log.Logger) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
	if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		logger.Debug("close frame failed", "error", err)
	}
}
