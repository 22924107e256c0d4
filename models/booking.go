package models

import (
	"time"

	"gorm.io/datatypes"
)

type Booking struct {
	BookingID    uint           `gorm:"column:BookingID;primaryKey;autoIncrement" json:"BookingID"`
	CustomerID   uint           `gorm:"column:CustomerID;not null;index" json:"CustomerID"`
	RoomNumber   uint           `gorm:"column:RoomNumber;not null;index" json:"RoomNumber"`
	CheckInDate  datatypes.Date `gorm:"column:CheckInDate;not null" json:"CheckInDate"`
	CheckOutDate datatypes.Date `gorm:"column:CheckOutDate;not null" json:"CheckOutDate"`
	TotalCost    float64        `gorm:"column:TotalCost;type:decimal(10,2);not null" json:"TotalCost"`
	BookingDate  time.Time      `gorm:"column:BookingDate;not null" json:"BookingDate"`

	// FK targets only; never loaded or saved through the booking.
	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
	Room     *Room     `gorm:"foreignKey:RoomNumber;references:RoomNumber" json:"-"`
}

func (Booking) TableName() string {
	return "Booking"
}
