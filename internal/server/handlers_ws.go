package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	apperrors "github.com/sairaalvidatascientist-tech/Sentilytics/internal/errors"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // dashboards connect from arbitrary origins
	},
}

func (s *Server) handleWebSocket(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		keyword = s.config.StreamKeyword
	}
	if keyword == "" {
		return apperrors.ValidationError("keyword query parameter is required").WithContext("field", "keyword")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logging.WithKeyword(keyword).Error("Failed to upgrade WebSocket", "error", err)
		return nil
	}

	if err := s.coordinator.Subscribe(keyword, conn); err != nil {
		// Connection already closed by the coordinator on rejection.
		logging.WithKeyword(keyword).Warn("Failed to subscribe to stream", "error", err)
		return nil
	}

	// Read pump (blocks until disconnect)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.coordinator.Unsubscribe(keyword, conn)

	return nil
}
