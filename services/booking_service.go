package services

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService keeps Booking rows and Room status in step. Every mutating
// call runs both writes in one transaction.
type BookingService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Now: time.Now}
}

// CreateBookingInput describes a new reservation. The caller guarantees that
// CustomerID refers to an existing customer; it is not looked up.
type CreateBookingInput struct {
	GuestName    string
	RoomNumber   uint
	CheckInDate  time.Time
	CheckOutDate time.Time
	TotalCost    float64
	CustomerID   uint
}

type Cancellation struct {
	BookingID  uint
	RoomNumber uint
}

func (c Cancellation) Message() string {
	return fmt.Sprintf("Booking %d cancelled successfully. Room %d is now Vacant.", c.BookingID, c.RoomNumber)
}

// session confirms the database answers and returns a handle bound to ctx.
func (s *BookingService) session(ctx context.Context) (*gorm.DB, error) {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return s.DB.WithContext(ctx), nil
}

// CreateBooking inserts the booking and marks its room Occupied. The room must
// currently be Vacant; otherwise ErrRoomOccupied is returned and nothing is
// written.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (uint, error) {
	db, err := s.session(ctx)
	if err != nil {
		return 0, err
	}

	booking := models.Booking{
		CustomerID:   in.CustomerID,
		RoomNumber:   in.RoomNumber,
		CheckInDate:  datatypes.Date(in.CheckInDate),
		CheckOutDate: datatypes.Date(in.CheckOutDate),
		TotalCost:    in.TotalCost,
		BookingDate:  s.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return errors.Wrap(err, "insert booking")
		}
		return occupyRoom(tx, in.RoomNumber)
	})
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().
		Uint("booking_id", booking.BookingID).
		Uint("room_number", in.RoomNumber).
		Uint("customer_id", in.CustomerID).
		Str("guest_name", in.GuestName).
		Msg("booking created")

	return booking.BookingID, nil
}

func occupyRoom(tx *gorm.DB, roomNumber uint) error {
	res := tx.Model(&models.Room{}).
		Where("RoomNumber = ? AND Status = ?", roomNumber, models.RoomVacant).
		Update("Status", models.RoomOccupied)
	if res.Error != nil {
		return errors.Wrap(res.Error, "mark room occupied")
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.Room{}).Where("RoomNumber = ?", roomNumber).Count(&count).Error; err != nil {
		return errors.Wrap(err, "look up room")
	}
	if count == 0 {
		return errors.Wrapf(ErrRoomNotFound, "room %d", roomNumber)
	}
	return errors.Wrapf(ErrRoomOccupied, "room %d", roomNumber)
}

// ListRoomAvailability returns every room with its type and rate, ordered by
// room number.
func (s *BookingService) ListRoomAvailability(ctx context.Context) ([]models.RoomAvailability, error) {
	db, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	rooms := []models.RoomAvailability{}
	err = db.Table("Room AS r").
		Select("r.RoomNumber, rt.TypeName AS RoomType, rt.Rate, r.Status").
		Joins("JOIN RoomType rt ON r.RoomTypeID = rt.RoomTypeID").
		Order("r.RoomNumber").
		Scan(&rooms).Error
	if err != nil {
		return nil, errors.Wrap(err, "list rooms")
	}
	if rooms == nil {
		rooms = []models.RoomAvailability{}
	}
	return rooms, nil
}

// ListRoomTypes returns the room type catalogue ordered by id.
func (s *BookingService) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	db, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	types := []models.RoomType{}
	if err := db.Order("RoomTypeID").Find(&types).Error; err != nil {
		return nil, errors.Wrap(err, "list room types")
	}
	return types, nil
}

// CancelBooking deletes the booking and marks its room Vacant. The room is
// released unconditionally; one live booking per room is assumed.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uint) (Cancellation, error) {
	db, err := s.session(ctx)
	if err != nil {
		return Cancellation{}, err
	}

	var booking models.Booking
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("BookingID", "RoomNumber").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(ErrBookingNotFound)
			}
			return errors.Wrap(err, "look up booking")
		}

		res := tx.Delete(&models.Booking{}, booking.BookingID)
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete booking")
		}
		// A concurrent cancel got there first.
		if res.RowsAffected == 0 {
			return errors.WithStack(ErrBookingNotFound)
		}

		err := tx.Model(&models.Room{}).
			Where("RoomNumber = ?", booking.RoomNumber).
			Update("Status", models.RoomVacant).Error
		return errors.Wrap(err, "mark room vacant")
	})
	if err != nil {
		return Cancellation{}, err
	}

	zerolog.Ctx(ctx).Info().
		Uint("booking_id", booking.BookingID).
		Uint("room_number", booking.RoomNumber).
		Msg("booking cancelled")

	return Cancellation{BookingID: booking.BookingID, RoomNumber: booking.RoomNumber}, nil
}
