//go:build integration

package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking/config"
	"hotel-booking/models"
	"hotel-booking/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const (
	mysqlUser     = "hotel_admin"
	mysqlPassword = "testpass"
	mysqlDatabase = "hotel_db"
)

func startMySQL(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.4",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": mysqlPassword,
			"MYSQL_DATABASE":      mysqlDatabase,
			"MYSQL_USER":          mysqlUser,
			"MYSQL_PASSWORD":      mysqlPassword,
		},
		Tmpfs: map[string]string{"/var/lib/mysql": "rw"},
		WaitingFor: wait.ForAll(
			wait.ForLog("port: 3306  MySQL Community Server"),
			wait.ForListeningPort("3306/tcp"),
		).WithDeadline(3 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start mysql container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "3306/tcp")
	require.NoError(t, err)

	db, err := config.ConnectDatabase(config.DBConfig{
		Host:            host,
		Port:            port.Port(),
		User:            mysqlUser,
		Password:        mysqlPassword,
		Name:            mysqlDatabase,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Minute,
		SlowThreshold:   time.Second,
		AutoMigrate:     true,
		Seed:            true,
	})
	require.NoError(t, err, "connect mysql")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestMySQL_BookingLifecycle(t *testing.T) {
	db := startMySQL(t)
	svc := services.NewBookingService(db)
	ctx := context.Background()

	t.Run("unknown customer trips the foreign key and rolls back", func(t *testing.T) {
		in := bookingInput(104)
		in.CustomerID = 9999

		_, err := svc.CreateBooking(ctx, in)
		require.Error(t, err)
		assert.Equal(t, "foreign_key", services.ConstraintKind(err))

		var n int64
		require.NoError(t, db.Model(&models.Booking{}).Where("RoomNumber = ?", 104).Count(&n).Error)
		assert.Zero(t, n)

		var room models.Room
		require.NoError(t, db.First(&room, 104).Error)
		assert.Equal(t, models.RoomVacant, room.Status)
	})

	t.Run("create then cancel", func(t *testing.T) {
		id, err := svc.CreateBooking(ctx, bookingInput(101))
		require.NoError(t, err)

		rooms, err := svc.ListRoomAvailability(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.RoomOccupied, roomStatus(t, rooms, 101))

		result, err := svc.CancelBooking(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, uint(101), result.RoomNumber)

		rooms, err = svc.ListRoomAvailability(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.RoomVacant, roomStatus(t, rooms, 101))
	})

	t.Run("concurrent bookings of one room admit a single winner", func(t *testing.T) {
		const attempts = 8

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				// Losers see either the occupancy conflict or an engine deadlock;
				// both roll back.
				if _, err := svc.CreateBooking(ctx, bookingInput(102)); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)

		var n int64
		require.NoError(t, db.Model(&models.Booking{}).Where("RoomNumber = ?", 102).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})
}
