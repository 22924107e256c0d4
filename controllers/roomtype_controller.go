package controllers

import (
	"net/http"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// GetRoomTypes (GET /api/room-types)
func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomSvc.ListRoomTypes(c.Request.Context())
	if err != nil {
		logServiceError(c, err, "list room types failed")

		if errors.Is(err, services.ErrDatabaseUnavailable) {
			utils.JSONError(c, http.StatusInternalServerError, "Database connection failed", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room types", services.Details(err))
		return
	}

	c.JSON(http.StatusOK, types)
}
