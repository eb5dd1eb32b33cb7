package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Identity IdentityConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
	Migrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// IdentityConfig holds the organization email domain, the role names assigned
// on provisioning and the password policy enforced by the identity provider.
type IdentityConfig struct {
	EmailDomain    string
	AdminRole      string
	DoctorRole     string
	PatientRole    string
	PasswordPolicy PasswordPolicy
}

type PasswordPolicy struct {
	RequiredLength         int
	RequireDigit           bool
	RequireLowercase       bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
}

// DefaultPasswordPolicy mirrors the policy applied when nothing is configured.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		RequiredLength:         6,
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
	}
}

// Roles returns every configured role name.
func (c IdentityConfig) Roles() []string {
	return []string{c.AdminRole, c.DoctorRole, c.PatientRole}
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads configuration from the given env file and the process
// environment. A missing file is not an error; environment variables and
// defaults still apply.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(v.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			CORSOrigin: v.GetString("APP_CORS_ORIGIN"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			TimeZone: v.GetString("DB_TIMEZONE"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Identity: IdentityConfig{
			EmailDomain: v.GetString("IDENTITY_EMAIL_DOMAIN"),
			AdminRole:   v.GetString("IDENTITY_ROLE_ADMIN"),
			DoctorRole:  v.GetString("IDENTITY_ROLE_DOCTOR"),
			PatientRole: v.GetString("IDENTITY_ROLE_PATIENT"),
			PasswordPolicy: PasswordPolicy{
				RequiredLength:         v.GetInt("PASSWORD_REQUIRED_LENGTH"),
				RequireDigit:           v.GetBool("PASSWORD_REQUIRE_DIGIT"),
				RequireLowercase:       v.GetBool("PASSWORD_REQUIRE_LOWERCASE"),
				RequireUppercase:       v.GetBool("PASSWORD_REQUIRE_UPPERCASE"),
				RequireNonAlphanumeric: v.GetBool("PASSWORD_REQUIRE_NON_ALPHANUMERIC"),
			},
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	policy := DefaultPasswordPolicy()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_CORS_ORIGIN", "*")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("IDENTITY_EMAIL_DOMAIN", "hospital.com")
	v.SetDefault("IDENTITY_ROLE_ADMIN", "Admin")
	v.SetDefault("IDENTITY_ROLE_DOCTOR", "Doctor")
	v.SetDefault("IDENTITY_ROLE_PATIENT", "Patient")
	v.SetDefault("PASSWORD_REQUIRED_LENGTH", policy.RequiredLength)
	v.SetDefault("PASSWORD_REQUIRE_DIGIT", policy.RequireDigit)
	v.SetDefault("PASSWORD_REQUIRE_LOWERCASE", policy.RequireLowercase)
	v.SetDefault("PASSWORD_REQUIRE_UPPERCASE", policy.RequireUppercase)
	v.SetDefault("PASSWORD_REQUIRE_NON_ALPHANUMERIC", policy.RequireNonAlphanumeric)
}
