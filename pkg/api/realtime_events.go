package api

import (
	"io"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/labstack/echo"
	log "github.com/sirupsen/logrus"
)

// eventSink serializes writes of record events to a websocket connection.
// Events arriving after close are dropped.
type eventSink struct {
	mu     sync.Mutex
	conn   io.WriteCloser
	closed bool
}

func (s *eventSink) send(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if err := wsutil.WriteServerMessage(s.conn, ws.OpText, data); err != nil {
		log.Error("api: failed to send realtime event: ", err)
	}
}

func (s *eventSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return s.conn.Close()
}

// realtimeEventsHandler streams every saved record to a websocket client as
// a JSON text frame until the client disconnects.
func (h *Handler) realtimeEventsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, _, _, err := ws.UpgradeHTTP(c.Request(), c.Response())
		if err != nil {
			log.Error("api: failed to upgrade to websocket: ", err)
			return nil
		}

		sink := &eventSink{conn: conn}
		defer sink.close()

		unsubscribe, err := h.subscriber.Subscribe(sink.send)
		if err != nil {
			log.Error("api: failed to subscribe to record events: ", err)
			return nil
		}
		defer func() {
			if err := unsubscribe(); err != nil {
				log.Warn("api: failed to unsubscribe from record events: ", err)
			}
		}()

		// Client frames carry nothing, reading only detects the disconnect.
		for {
			if _, _, err := wsutil.ReadClientData(conn); err != nil {
				log.WithField("remote_ip", c.RealIP()).Debug("api: realtime client gone: ", err)
				return nil
			}
		}
	}
}
