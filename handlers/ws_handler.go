package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lkwun/formbuilder-go/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamSubmissions godoc
// @Summary Watch new submissions of an owned form over a websocket
// @Tags submissions
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 101 {string} string "switching protocols"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/submissions/stream [get]
func (h *SubmissionHandler) StreamSubmissions(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	// Ownership check before the upgrade so errors are still plain JSON.
	if err := h.submissions.CheckOwner(uid, id); err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	events, cancel := h.hub.Subscribe(id)

	go func() {
		defer conn.Close()
		for msg := range events {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	// The read loop only detects the peer going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cancel()
			break
		}
	}
}
