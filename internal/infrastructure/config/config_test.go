package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"ROOFLINE_APP_NAME":                os.Getenv("ROOFLINE_APP_NAME"),
		"ROOFLINE_APP_ENV":                 os.Getenv("ROOFLINE_APP_ENV"),
		"ROOFLINE_APP_PORT":                os.Getenv("ROOFLINE_APP_PORT"),
		"ROOFLINE_DATABASE_HOST":           os.Getenv("ROOFLINE_DATABASE_HOST"),
		"ROOFLINE_DATABASE_PORT":           os.Getenv("ROOFLINE_DATABASE_PORT"),
		"ROOFLINE_DATABASE_USER":           os.Getenv("ROOFLINE_DATABASE_USER"),
		"ROOFLINE_DATABASE_PASSWORD":       os.Getenv("ROOFLINE_DATABASE_PASSWORD"),
		"ROOFLINE_DATABASE_DBNAME":         os.Getenv("ROOFLINE_DATABASE_DBNAME"),
		"ROOFLINE_DATABASE_SSLMODE":        os.Getenv("ROOFLINE_DATABASE_SSLMODE"),
		"ROOFLINE_DATABASE_MAX_OPEN_CONNS": os.Getenv("ROOFLINE_DATABASE_MAX_OPEN_CONNS"),
		"ROOFLINE_DATABASE_MAX_IDLE_CONNS": os.Getenv("ROOFLINE_DATABASE_MAX_IDLE_CONNS"),
		"ROOFLINE_JWT_SECRET":              os.Getenv("ROOFLINE_JWT_SECRET"),
		"ROOFLINE_TELEMETRY_SAMPLING_RATIO": os.Getenv("ROOFLINE_TELEMETRY_SAMPLING_RATIO"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "roofline-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "roofline", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, "roofline-backend", cfg.JWT.Issuer)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	})

	t.Run("loads values from environment variables with ROOFLINE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("ROOFLINE_APP_NAME", "test-app")
		os.Setenv("ROOFLINE_APP_ENV", "testing")
		os.Setenv("ROOFLINE_APP_PORT", "9000")
		os.Setenv("ROOFLINE_DATABASE_HOST", "testdb.local")
		os.Setenv("ROOFLINE_DATABASE_PORT", "5433")
		os.Setenv("ROOFLINE_DATABASE_USER", "testuser")
		os.Setenv("ROOFLINE_DATABASE_PASSWORD", "testpass")
		os.Setenv("ROOFLINE_DATABASE_DBNAME", "testdb")
		os.Setenv("ROOFLINE_DATABASE_SSLMODE", "require")
		os.Setenv("ROOFLINE_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("ROOFLINE_DATABASE_MAX_IDLE_CONNS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("ROOFLINE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("ROOFLINE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("ROOFLINE_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates sampling ratio range", func(t *testing.T) {
		clearEnv()
		os.Setenv("ROOFLINE_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"ROOFLINE_APP_ENV":           os.Getenv("ROOFLINE_APP_ENV"),
		"ROOFLINE_JWT_SECRET":        os.Getenv("ROOFLINE_JWT_SECRET"),
		"ROOFLINE_DATABASE_PASSWORD": os.Getenv("ROOFLINE_DATABASE_PASSWORD"),
		"ROOFLINE_DATABASE_SSLMODE":  os.Getenv("ROOFLINE_DATABASE_SSLMODE"),
		"ROOFLINE_HTTP_CORS_ALLOW_ORIGINS": os.Getenv("ROOFLINE_HTTP_CORS_ALLOW_ORIGINS"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	setProdBase := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
		os.Setenv("ROOFLINE_APP_ENV", "production")
		os.Setenv("ROOFLINE_JWT_SECRET", "this-is-a-very-long-secret-key-for-prod")
		os.Setenv("ROOFLINE_DATABASE_PASSWORD", "prodpass")
		os.Setenv("ROOFLINE_DATABASE_SSLMODE", "require")
	}

	t.Run("valid production config passes", func(t *testing.T) {
		setProdBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})

	t.Run("requires JWT secret", func(t *testing.T) {
		setProdBase()
		os.Unsetenv("ROOFLINE_JWT_SECRET")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required")
	})

	t.Run("rejects short JWT secret", func(t *testing.T) {
		setProdBase()
		os.Setenv("ROOFLINE_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("requires database password", func(t *testing.T) {
		setProdBase()
		os.Unsetenv("ROOFLINE_DATABASE_PASSWORD")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required")
	})

	t.Run("rejects disabled SSL", func(t *testing.T) {
		setProdBase()
		os.Setenv("ROOFLINE_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "roofline",
		Password: "p@ss/word",
		DBName:   "roofline",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
