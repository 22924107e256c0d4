package config

import (
	"slices"

	"hotel-booking/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var demoRoomTypes = []models.RoomType{
	{RoomTypeID: 1, TypeName: "Standard", Rate: 120.00},
	{RoomTypeID: 2, TypeName: "Deluxe", Rate: 180.00},
	{RoomTypeID: 3, TypeName: "Suite", Rate: 300.00},
}

var demoRooms = []models.Room{
	{RoomNumber: 101, RoomTypeID: 1, Status: models.RoomVacant},
	{RoomNumber: 102, RoomTypeID: 1, Status: models.RoomVacant},
	{RoomNumber: 103, RoomTypeID: 2, Status: models.RoomVacant},
	{RoomNumber: 104, RoomTypeID: 2, Status: models.RoomVacant},
	{RoomNumber: 201, RoomTypeID: 3, Status: models.RoomVacant},
	{RoomNumber: 202, RoomTypeID: 3, Status: models.RoomVacant},
}

var demoCustomers = []models.Customer{
	{CustomerID: 7, FullName: "A. Lee", Email: "a.lee@example.com"},
}

// SeedDatabase fills empty tables with demo data. Tables that already hold
// rows are left alone.
func SeedDatabase(db *gorm.DB) error {
	// gorm writes generated values back into what it creates.
	roomTypes := slices.Clone(demoRoomTypes)
	rooms := slices.Clone(demoRooms)
	customers := slices.Clone(demoCustomers)

	steps := []struct {
		name  string
		model any
		rows  any
	}{
		{"room types", &models.RoomType{}, &roomTypes},
		{"rooms", &models.Room{}, &rooms},
		{"customers", &models.Customer{}, &customers},
	}

	for _, step := range steps {
		var count int64
		if err := db.Model(step.model).Count(&count).Error; err != nil {
			return errors.Wrapf(err, "count %s", step.name)
		}
		if count > 0 {
			log.Debug().Str("table", step.name).Int64("rows", count).Msg("seed skipped")
			continue
		}
		if err := db.Create(step.rows).Error; err != nil {
			return errors.Wrapf(err, "seed %s", step.name)
		}
		log.Info().Str("table", step.name).Msg("seeded")
	}

	return nil
}
