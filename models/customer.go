package models

// Customer rows are managed outside this service; bookings only reference them.
type Customer struct {
	CustomerID uint   `gorm:"column:CustomerID;primaryKey" json:"CustomerID"`
	FullName   string `gorm:"column:FullName;type:varchar(100)" json:"FullName"`
	Email      string `gorm:"column:Email;type:varchar(100)" json:"Email"`
}

func (Customer) TableName() string {
	return "Customer"
}
