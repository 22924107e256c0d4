package config

import (
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-booking/models"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(err, "parse mysql url")
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", errors.New("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "true")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	// Let the driver interpret the query params, then fill in the rest.
	mc, err := mysql.ParseDSN("/?" + q.Encode())
	if err != nil {
		return "", errors.Wrap(err, "invalid mysql url params")
	}
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(u.Hostname(), port)
	mc.DBName = dbName

	return mc.FormatDSN(), nil
}

// DSN resolves the go-sql-driver DSN from the configured URL or discrete fields.
func (c DBConfig) DSN() (string, error) {
	raw := strings.TrimSpace(c.URL)
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		if _, err := mysql.ParseDSN(raw); err != nil {
			return "", errors.Wrap(err, "invalid mysql dsn")
		}
		return raw, nil
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}

	return mc.FormatDSN(), nil
}

// ConnectDatabase opens the MySQL pool and, when configured, migrates and
// seeds the schema.
func ConnectDatabase(cfg DBConfig) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{Logger: NewGormLogger(cfg.SlowThreshold)})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	if cfg.Seed {
		if err := SeedDatabase(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the booking schema, parents before children.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.RoomType{},
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
