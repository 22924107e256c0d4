package controllers

import (
	"context"
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=room_controller.go -destination=mocks/room_lister_mock.go -package=mocks

type RoomLister interface {
	ListRoomAvailability(ctx context.Context) ([]models.RoomAvailability, error)
	ListRoomTypes(ctx context.Context) ([]models.RoomType, error)
}

type RoomController struct {
	RoomSvc RoomLister
}

func NewRoomController(svc RoomLister) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms (GET /api/rooms)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListRoomAvailability(c.Request.Context())
	if err != nil {
		logServiceError(c, err, "list rooms failed")

		if errors.Is(err, services.ErrDatabaseUnavailable) {
			utils.JSONError(c, http.StatusInternalServerError, "Database connection failed", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch rooms", services.Details(err))
		return
	}

	c.JSON(http.StatusOK, rooms)
}
