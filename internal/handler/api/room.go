package api

import (
	"net/http"

	reqdto "hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	commands commands.RoomCommands
}

func NewRoomHandler(roomCommands commands.RoomCommands) *RoomHandler {
	return &RoomHandler{commands: roomCommands}
}

// @Summary Change room status
// @Description Maintenance transitions between AVAILABLE, MAINTENANCE and OUT_OF_SERVICE
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.ChangeRoomStatusRequest true "Target status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id}/status [patch]
func (h *RoomHandler) ChangeStatus(c *gin.Context) {
	roomID, ok := pathID(c, "room")
	if !ok {
		return
	}
	var req reqdto.ChangeRoomStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	rm, err := h.commands.ChangeRoomStatus(c.Request.Context(), roomID, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoom(rm))
}
