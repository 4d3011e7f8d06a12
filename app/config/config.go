package config

import (
	"os"
	"strconv"
)

// Config holds all process configuration. It is constructed once in main
// and passed explicitly to whatever needs it.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	SMTP    SMTPConfig
	Company CompanyInfo

	AdminEmail string
	LogoPath   string

	SeedDemo          bool
	DemoAdminEmail    string
	DemoAdminPassword string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// CompanyInfo is the identity block printed on payslip documents.
type CompanyInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Load reads configuration from the environment, falling back to
// development defaults. JWT_SECRET must be overridden in any real
// deployment.
func Load() *Config {
	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	smtpUser := os.Getenv("SMTP_USER")

	return &Config{
		Port:        getenv("PORT", "8000"),
		DatabaseURL: getenv("DATABASE_URL", "payroll.db"),
		JWTSecret:   getenv("JWT_SECRET", "change-me"),
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     smtpPort,
			Username: smtpUser,
			Password: os.Getenv("SMTP_PASS"),
			From:     getenv("FROM_EMAIL", smtpUser),
		},
		Company: CompanyInfo{
			Name:    getenv("COMPANY_NAME", "Anshumat Solutions"),
			Phone:   getenv("COMPANY_PHONE", "+01 (977) 2599 12"),
			Email:   getenv("COMPANY_EMAIL", "contact@anshumat.org"),
			Address: getenv("COMPANY_ADDRESS", "Durgapur, West Bengal 713363, India"),
		},
		AdminEmail:        getenv("ADMIN_EMAIL", "admin@example.com"),
		LogoPath:          getenv("LOGO_PATH", "static/logo.png"),
		SeedDemo:          getenv("SEED_DEMO", "false") == "true",
		DemoAdminEmail:    getenv("DEMO_ADMIN_EMAIL", "hire-me@anshumat.org"),
		DemoAdminPassword: getenv("DEMO_ADMIN_PASSWORD", "HireMe@2025!"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
