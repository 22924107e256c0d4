package models

// RoomType is a category of room with a display name and nightly rate.
type RoomType struct {
	RoomTypeID uint    `gorm:"column:RoomTypeID;primaryKey" json:"RoomTypeID"`
	TypeName   string  `gorm:"column:TypeName;type:varchar(50);not null" json:"TypeName"`
	Rate       float64 `gorm:"column:Rate;type:decimal(10,2);not null" json:"Rate"`
}

func (RoomType) TableName() string {
	return "RoomType"
}
