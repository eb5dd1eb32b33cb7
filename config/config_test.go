package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile_Defaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "hospital.com", cfg.Identity.EmailDomain)
	assert.Equal(t, []string{"Admin", "Doctor", "Patient"}, cfg.Identity.Roles())
	assert.Equal(t, DefaultPasswordPolicy(), cfg.Identity.PasswordPolicy)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
}

func TestLoadConfigFile_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_HOST=db.internal\nIDENTITY_EMAIL_DOMAIN=clinic.org\nJWT_ACCESS_EXPIRY=30m\nPASSWORD_REQUIRE_DIGIT=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("IDENTITY_ROLE_DOCTOR", "Physician")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "clinic.org", cfg.Identity.EmailDomain)
	assert.Equal(t, "Physician", cfg.Identity.DoctorRole)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.False(t, cfg.Identity.PasswordPolicy.RequireDigit)
	assert.True(t, cfg.Identity.PasswordPolicy.RequireUppercase)
}
