package controllers

import (
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func logServiceError(c *gin.Context, err error, msg string) {
	logger := zerolog.Ctx(c.Request.Context())

	evt := logger.Error()
	if errors.Is(err, services.ErrBookingNotFound) || errors.Is(err, services.ErrRoomOccupied) {
		evt = logger.Warn()
	}
	if kind := services.ConstraintKind(err); kind != "" {
		evt = evt.Str("constraint", kind)
	}

	evt.Stack().Err(err).Msg(msg)
}
