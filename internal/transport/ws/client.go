package ws

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tilemerge/internal/board"
)

// client is one WebSocket connection and the session it plays.
// Only readPump touches sessionID.
type client struct {
	server    *Server
	conn      *websocket.Conn
	send      chan Response
	done      chan struct{} // closed when writePump exits
	sessionID string
}

// readPump decodes requests, applies them and queues the replies.
func (c *client) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
		c.server.sessions.Delete(c.sessionID)
		c.server.logger.Info("Client disconnected", "session", c.sessionID)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.logger.Warn("WebSocket read error", "session", c.sessionID, "err", err)
			}
			return
		}
		select {
		case c.send <- c.handle(req):
		case <-c.done:
			return
		}
	}
}

func (c *client) handle(req Request) Response {
	switch req.Type {
	case TypeMove:
		dir := board.ParseDirection(req.Direction)
		res, st, err := c.server.sessions.Move(c.sessionID, dir)
		if err != nil {
			return errorResponse(err.Error())
		}
		c.server.logger.Debug("Move", "session", c.sessionID, "dir", dir, "changed", res.Changed)
		return moveResponse(res, st)

	case TypeReset:
		st, err := c.server.sessions.Reset(c.sessionID)
		if err != nil {
			return errorResponse(err.Error())
		}
		return stateResponse(st)

	case TypeNew:
		width, height := req.Width, req.Height
		if width == 0 || height == 0 {
			cur, err := c.server.sessions.Get(c.sessionID)
			if err != nil {
				return errorResponse(err.Error())
			}
			if width == 0 {
				width = cur.Width
			}
			if height == 0 {
				height = cur.Height
			}
		}
		st, err := c.server.sessions.Create(width, height, 0)
		if err != nil {
			return errorResponse(err.Error())
		}
		if err := c.server.sessions.Pin(st.ID); err != nil {
			return errorResponse(err.Error())
		}
		c.server.sessions.Delete(c.sessionID)
		c.sessionID = st.ID
		return stateResponse(st)

	default:
		return errorResponse(fmt.Sprintf("unknown request type %q", req.Type))
	}
}

// writePump writes queued replies and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		close(c.done)
	}()

	for {
		select {
		case resp, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(resp); err != nil {
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
