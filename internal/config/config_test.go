package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray .env is read,
// and clears the variables Load looks at.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for key := range defaults {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("STORE", "memory")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "clientdir.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_name: from_file
db_user: postgres
db_port: "6543"
server_port: "9090"
cors_origins:
  - https://app.example.com
`), 0o600))

	t.Setenv("DB_NAME", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "from_env", cfg.DBName)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "6543", cfg.DBPort)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSOrigins)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(".env", []byte("STORE=memory\nJWT_SECRET=s3cret\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STORE")
		os.Unsetenv("JWT_SECRET")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("STORE", "memory")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"memory needs nothing", Config{Store: StoreMemory}, ""},
		{"url is enough", Config{Store: StorePostgres, DBUrl: "postgres://x"}, ""},
		{"discrete fields", Config{Store: StorePostgres, DBName: "clients", DBUser: "postgres"}, ""},
		{"no name", Config{Store: StorePostgres, DBUser: "postgres"}, "db_name is required"},
		{"no user", Config{Store: StorePostgres, DBName: "clients"}, "db_user is required"},
		{"unknown store", Config{Store: "redis"}, "store must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "clients",
		DBUser:     "postgres",
		DBPassword: "p@ss word",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://postgres:p%40ss%20word@db:5432/clients?sslmode=disable", cfg.DSN())

	cfg.DBPassword = ""
	assert.Equal(t, "postgres://postgres@db:5432/clients?sslmode=disable", cfg.DSN())

	cfg.DBUrl = "postgres://u@h/d"
	assert.Equal(t, "postgres://u@h/d", cfg.DSN())
}
