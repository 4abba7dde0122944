package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	Environment   string
	MigrationsDir string
	RunMigrations bool
	MaxBodyBytes  int64

	Payroll PayrollPolicy
}

// PayrollPolicy carries the statutory rates used by the payslip computer.
// Defaults preserve the established payroll rules; every field can be
// overridden from the environment for a different regime.
type PayrollPolicy struct {
	HRARate              float64
	DARate               float64
	MedicalAllowance     float64
	ConveyanceAllowance  float64
	PFRate               float64
	StateInsuranceRate   float64
	ProfessionalTax      float64
	ProfessionalTaxFloor float64
	HalfDayWeight        float64
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		Environment:   getEnv("APP_ENV", "development"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		MaxBodyBytes:  int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		Payroll: PayrollPolicy{
			HRARate:              getEnvFloat("PAYROLL_HRA_RATE", 0.40),
			DARate:               getEnvFloat("PAYROLL_DA_RATE", 0.12),
			MedicalAllowance:     getEnvFloat("PAYROLL_MEDICAL_ALLOWANCE", 1250),
			ConveyanceAllowance:  getEnvFloat("PAYROLL_CONVEYANCE_ALLOWANCE", 1600),
			PFRate:               getEnvFloat("PAYROLL_PF_RATE", 0.12),
			StateInsuranceRate:   getEnvFloat("PAYROLL_ESI_RATE", 0.0175),
			ProfessionalTax:      getEnvFloat("PAYROLL_PROFESSIONAL_TAX", 200),
			ProfessionalTaxFloor: getEnvFloat("PAYROLL_PROFESSIONAL_TAX_FLOOR", 10000),
			HalfDayWeight:        getEnvFloat("PAYROLL_HALF_DAY_WEIGHT", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	rates := map[string]float64{
		"PAYROLL_HRA_RATE":        c.Payroll.HRARate,
		"PAYROLL_DA_RATE":         c.Payroll.DARate,
		"PAYROLL_PF_RATE":         c.Payroll.PFRate,
		"PAYROLL_ESI_RATE":        c.Payroll.StateInsuranceRate,
		"PAYROLL_HALF_DAY_WEIGHT": c.Payroll.HalfDayWeight,
	}
	for name, rate := range rates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}
	return nil
}
