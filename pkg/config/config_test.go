package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distriquim-api/pkg/config"
)

// En producción el servicio no debe arrancar sin JWT_SECRET: firmar sesiones
// con el secreto de desarrollo en un entorno real es inaceptable.
func TestLoad_ProduccionSinSecret_FallaElArranque(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_StagingSinSecret_TambienFalla(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DesarrolloSinSecret_UsaDevSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DevSecret, cfg.JWT.Secret)
}

func TestLoad_SecretExplicito_SeRespeta(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secreto-de-produccion")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "super-secreto-de-produccion", cfg.JWT.Secret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "x")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.JWT.ExpDays, "la sesión del portal dura 7 días por defecto")
	assert.Equal(t, "distriquim", cfg.JWT.Issuer)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "./uploads", cfg.Storage.Dir)
}

func TestDBConfig_DSNEscapaCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:word/1",
		DBName: "distriquim", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aword%2F1")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestDBConfig_DatabaseURLTienePrioridad(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@supabase:6543/db?sslmode=require",
		Host:        "ignored",
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}
