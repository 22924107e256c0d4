// controllers/booking_controller.go
package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	GuestName    string   `json:"guestName"`
	RoomNumber   uint     `json:"roomNumber" binding:"required,gt=0"`
	CheckInDate  string   `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate string   `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
	TotalCost    *float64 `json:"totalCost" binding:"required,gte=0"`
	CustomerID   uint     `json:"customerId" binding:"required,gt=0"`
}

func (r CreateBookingRequest) toInput() (services.CreateBookingInput, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckInDate)
	if err != nil {
		return services.CreateBookingInput{}, errors.Wrap(err, "invalid checkInDate")
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOutDate)
	if err != nil {
		return services.CreateBookingInput{}, errors.Wrap(err, "invalid checkOutDate")
	}
	if checkOut.Before(checkIn) {
		return services.CreateBookingInput{}, errors.New("checkOutDate must not be before checkInDate")
	}

	return services.CreateBookingInput{
		GuestName:    r.GuestName,
		RoomNumber:   r.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalCost:    *r.TotalCost,
		CustomerID:   r.CustomerID,
	}, nil
}

// ---------------------------
// Controller
// ---------------------------

//go:generate mockgen -source=booking_controller.go -destination=mocks/booking_manager_mock.go -package=mocks

type BookingManager interface {
	CreateBooking(ctx context.Context, in services.CreateBookingInput) (uint, error)
	CancelBooking(ctx context.Context, bookingID uint) (services.Cancellation, error)
}

type BookingController struct {
	BookingSvc BookingManager
}

func NewBookingController(svc BookingManager) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	in, err := payload.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	bookingID, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), in)
	if err != nil {
		logServiceError(c, err, "create booking failed")

		switch {
		case errors.Is(err, services.ErrDatabaseUnavailable):
			utils.JSONError(c, http.StatusInternalServerError, "Database connection failed", "")
		case errors.Is(err, services.ErrRoomOccupied):
			utils.JSONError(c, http.StatusConflict, "Room is already occupied", services.Details(err))
		default:
			utils.JSONError(c, http.StatusBadRequest, "Failed to process booking", services.Details(err))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking successful", "bookingId": bookingID})
}

// CancelBooking (DELETE /api/bookings/:id)
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	// Non-numeric ids never match a booking route.
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}

	result, err := ctrl.BookingSvc.CancelBooking(c.Request.Context(), uint(bookingID))
	if err != nil {
		logServiceError(c, err, "cancel booking failed")

		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case errors.Is(err, services.ErrDatabaseUnavailable):
			utils.JSONError(c, http.StatusInternalServerError, "Database connection failed", "")
		default:
			utils.JSONError(c, http.StatusBadRequest, "Failed to cancel booking", services.Details(err))
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, result.Message())
}
