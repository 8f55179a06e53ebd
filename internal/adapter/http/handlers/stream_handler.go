package handlers

import (
	"log"
	"net/http"
	"time"

	response "github.com/acg-data/bizgenius-sub001/internal/adapter/http/dto/response"
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/middleware"
	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/metrics"
	"github.com/acg-data/bizgenius-sub001/internal/usecase"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type snapshotMessage struct {
	Type    string                   `json:"type"`
	Session response.SessionResponse `json:"session"`
}

// StreamHandler pushes a session's progress over a websocket: a snapshot
// first, then every lifecycle event until the run finishes.
type StreamHandler struct {
	sessions   usecase.ISessionUseCase
	subscriber interfaces.ISessionEventSubscriber
}

func NewStreamHandler(sessions usecase.ISessionUseCase, subscriber interfaces.ISessionEventSubscriber) *StreamHandler {
	return &StreamHandler{sessions: sessions, subscriber: subscriber}
}

// @Summary      Progress stream (websocket)
// @Tags         sessions
// @Security     Bearer
// @Param        id     path   string  true   "Session ID"
// @Param        token  query  string  false  "Bearer token for browsers"
// @Router       /sessions/{id}/stream [get]
func (h *StreamHandler) StreamSession(c *gin.Context) {
	id := c.Param("id")

	// Subscribe before reading the snapshot so no event falls in between.
	events, cancel := h.subscriber.Subscribe(id)
	defer cancel()

	s, err := h.sessions.GetSession(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		cancel()
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[stream][handler] upgrade failed session_id=%s err=%v", id, err)
		return
	}
	defer conn.Close()

	metrics.StreamClients.Inc()
	defer metrics.StreamClients.Dec()

	if err := writeJSON(conn, snapshotMessage{Type: "snapshot", Session: response.FromSession(s)}); err != nil {
		return
	}
	if s.IsTerminal() {
		closeStream(conn, "session finished")
		return
	}

	done := make(chan struct{})
	go readPump(conn, done)

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Cut off after missing events; finish with the stored state.
				h.finalSnapshot(c, conn, id)
				return
			}
			if err := writeJSON(conn, ev); err != nil {
				log.Printf("[stream][handler] write failed session_id=%s err=%v", id, err)
				return
			}
			if ev.Type == entities.SessionEventCompleted || ev.Type == entities.SessionEventFailed {
				closeStream(conn, "session finished")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *StreamHandler) finalSnapshot(c *gin.Context, conn *websocket.Conn, id string) {
	s, err := h.sessions.GetSession(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		log.Printf("[stream][handler] final snapshot failed session_id=%s err=%v", id, err)
		closeStream(conn, "stream interrupted")
		return
	}
	if err := writeJSON(conn, snapshotMessage{Type: "snapshot", Session: response.FromSession(s)}); err != nil {
		return
	}
	closeStream(conn, "session finished")
}

// readPump drains client frames so pongs and close frames are processed.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteJSON(v)
}

func closeStream(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait))
}
