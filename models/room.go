package models

type RoomStatus string

const (
	RoomVacant   RoomStatus = "Vacant"
	RoomOccupied RoomStatus = "Occupied"
)

// Room is keyed by its physical room number. Status is kept in step with the
// Booking table by BookingService, not by a database constraint.
type Room struct {
	RoomNumber uint       `gorm:"column:RoomNumber;primaryKey;autoIncrement:false" json:"RoomNumber"`
	RoomTypeID uint       `gorm:"column:RoomTypeID;not null;index" json:"RoomTypeID"`
	Status     RoomStatus `gorm:"column:Status;type:varchar(20);not null;default:Vacant" json:"Status"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:RoomTypeID" json:"-"`
}

func (Room) TableName() string {
	return "Room"
}

// RoomAvailability is one row of the room listing (Room joined with RoomType).
type RoomAvailability struct {
	RoomNumber uint       `gorm:"column:RoomNumber" json:"RoomNumber"`
	RoomType   string     `gorm:"column:RoomType" json:"RoomType"`
	Rate       float64    `gorm:"column:Rate" json:"Rate"`
	Status     RoomStatus `gorm:"column:Status" json:"Status"`
}
