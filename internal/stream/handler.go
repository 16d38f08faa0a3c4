package stream

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/CookieClicker_Go/internal/logger"
)

// SnapshotFunc returns the state sent right after a client connects
type SnapshotFunc func() (interface{}, error)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades the request to a websocket and pushes hub messages until
// the client goes away or the hub stops. The optional types query parameter
// is a comma separated filter.
func Handler(hub *Hub, snapshot SnapshotFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var types []string
		if filter := r.URL.Query().Get("types"); filter != "" {
			types = strings.Split(filter, ",")
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		client := hub.Register(types)
		if client == nil {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(WriteTimeout))
			return
		}
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", types)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		if !writeMessage(conn, Message{
			ID:        client.ID,
			Type:      TypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": types},
		}) {
			return
		}

		if snapshot != nil {
			if state, err := snapshot(); err == nil {
				if !writeMessage(conn, Message{
					ID:        client.ID,
					Type:      TypeState,
					Timestamp: time.Now().Unix(),
					Payload:   state,
				}) {
					return
				}
			}
		}

		// Incoming frames are ignored; reading only notices the close
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-gone:
				return

			case msg, ok := <-client.Messages:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
						time.Now().Add(WriteTimeout))
					return
				}
				if !writeMessage(conn, msg) {
					return
				}

			case <-keepalive.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
					return
				}
			}
		}
	}
}

func writeMessage(conn *websocket.Conn, msg Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error(LogMsgWriteError, "type", msg.Type, "error", err)
		return true
	}
	_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Warn(LogMsgWriteError, "type", msg.Type, "error", err)
		return false
	}
	return true
}
