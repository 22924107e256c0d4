package config

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MYSQL_URL", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "hotel_admin", cfg.DB.User)
	assert.Equal(t, "hotel_db", cfg.DB.Name)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.DB.Seed)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.CORS.AllowsAnyOrigin())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_SEED", "true")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.example.com , ,http://b.example.com")
	t.Setenv("MYSQL_URL", "")
	t.Setenv("DATABASE_URL", "mysql://u:p@db:3307/hotel")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.True(t, cfg.DB.Seed)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "mysql://u:p@db:3307/hotel", cfg.DB.URL)
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.CORS.AllowsAnyOrigin())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	t.Run("discrete fields", func(t *testing.T) {
		dsn, err := DBConfig{Host: "localhost", Port: "3306", User: "hotel_admin", Password: "pw", Name: "hotel_db"}.DSN()
		require.NoError(t, err)

		parsed, err := mysql.ParseDSN(dsn)
		require.NoError(t, err)
		assert.Equal(t, "hotel_admin", parsed.User)
		assert.Equal(t, "pw", parsed.Passwd)
		assert.Equal(t, "tcp", parsed.Net)
		assert.Equal(t, "localhost:3306", parsed.Addr)
		assert.Equal(t, "hotel_db", parsed.DBName)
		assert.True(t, parsed.ParseTime)
		assert.Equal(t, time.Local, parsed.Loc)
	})

	t.Run("mysql url", func(t *testing.T) {
		dsn, err := DBConfig{URL: "mysql://u:p@db.example.com/hotel"}.DSN()
		require.NoError(t, err)

		parsed, err := mysql.ParseDSN(dsn)
		require.NoError(t, err)
		assert.Equal(t, "u", parsed.User)
		assert.Equal(t, "p", parsed.Passwd)
		assert.Equal(t, "db.example.com:3306", parsed.Addr)
		assert.Equal(t, "hotel", parsed.DBName)
		assert.True(t, parsed.ParseTime)
	})

	t.Run("mysql url keeps explicit params", func(t *testing.T) {
		dsn, err := DBConfig{URL: "mysql://u:p@db:3310/hotel?parseTime=false"}.DSN()
		require.NoError(t, err)

		parsed, err := mysql.ParseDSN(dsn)
		require.NoError(t, err)
		assert.Equal(t, "db:3310", parsed.Addr)
		assert.False(t, parsed.ParseTime)
	})

	t.Run("mysql url with reserved characters in the password", func(t *testing.T) {
		dsn, err := DBConfig{URL: "mysql://hotel_admin:p%40ss%3Aw%3Frd@db:3306/hotel_db"}.DSN()
		require.NoError(t, err)

		parsed, err := mysql.ParseDSN(dsn)
		require.NoError(t, err)
		assert.Equal(t, "hotel_admin", parsed.User)
		assert.Equal(t, "p@ss:w?rd", parsed.Passwd)
		assert.Equal(t, "db:3306", parsed.Addr)
		assert.Equal(t, "hotel_db", parsed.DBName)
		assert.Equal(t, time.Local, parsed.Loc)
	})

	t.Run("mysql url with an invalid param", func(t *testing.T) {
		_, err := DBConfig{URL: "mysql://u:p@db/hotel?parseTime=maybe"}.DSN()
		assert.Error(t, err)
	})

	t.Run("mysql url without database", func(t *testing.T) {
		_, err := DBConfig{URL: "mysql://u:p@db:3306/"}.DSN()
		assert.Error(t, err)
	})

	t.Run("raw dsn passes through", func(t *testing.T) {
		raw := "u:p@tcp(db:3306)/hotel?parseTime=true"
		dsn, err := DBConfig{URL: raw}.DSN()
		require.NoError(t, err)
		assert.Equal(t, raw, dsn)
	})
}
