package resthandler

import (
	"context"
	"net/http"
	"time"

	"github.com/golangid/nearchat/internal/modules/message/domain"
	"github.com/golangid/nearchat/logger"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
)

const streamWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// stream push inbox frame to websocket client until client disconnect
func (h *RestHandler) stream(c echo.Context) error {
	participantID := c.Param("id")
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// upgrader already replied with http error
		return nil
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	// client frame are ignored, read error mean client is gone
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = h.poller.Run(ctx, participantID, func(inbox domain.Inbox) error {
		ws.SetWriteDeadline(time.Now().Add(streamWriteWait))
		return ws.WriteJSON(inbox)
	})
	if err != nil && ctx.Err() == nil {
		logger.LogEf("inbox stream %s: %v", participantID, err)
	}

	ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	return nil
}
