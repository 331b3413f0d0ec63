package config

import (
	"fmt"
	"net/http"
	"net/mail"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	trackererrors "sjsage522/pricetracker/pkg/errors"
)

// AmazonURLPrefix is the prefix every tracked product URL must carry
const AmazonURLPrefix = "https://www.amazon."

const (
	defaultUserAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/44.0.2403.157 Safari/537.36"
	defaultAcceptLang = "en-US, en;q=0.5"
)

// Config represents the application configuration
type Config struct {
	// Target product
	TargetURL   string
	TargetPrice decimal.Decimal

	// Request headers presented to the storefront
	UserAgent  string
	AcceptLang string

	// Email configuration
	EmailSender      string
	EmailRecipients  []string
	EmailContentType string

	// SMTP server configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults.
// Malformed numeric values are left zero and reported by Validate.
func LoadConfig() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_SERVER_PORT", "587"))
	targetPrice, _ := decimal.NewFromString(getEnv("TARGET_PRODUCT_PRICE", "0"))

	return &Config{
		TargetURL:        getEnv("TARGET_PRODUCT_URL", ""),
		TargetPrice:      targetPrice,
		UserAgent:        getEnv("REQUEST_HEADERS_USER_AGENT", defaultUserAgent),
		AcceptLang:       getEnv("REQUEST_HEADERS_ACCEPT_LANG", defaultAcceptLang),
		EmailSender:      strings.TrimSpace(getEnv("EMAIL_SENDER", "")),
		EmailRecipients:  splitList(getEnv("EMAIL_RECIPIENTS", "")),
		EmailContentType: getEnv("EMAIL_CONTENT_TYPE", "plain"),
		SMTPHost:         getEnv("SMTP_SERVER_HOST", ""),
		SMTPPort:         smtpPort,
		SMTPUsername:     getEnv("SMTP_SERVER_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_SERVER_PASSWORD", ""),
		Environment:      getEnv("TRACKER_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable before the run starts
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.TargetURL, AmazonURLPrefix) {
		return trackererrors.NewConfiguration(
			fmt.Sprintf("TARGET_PRODUCT_URL must start with %s", AmazonURLPrefix), nil)
	}
	if !c.TargetPrice.IsPositive() {
		return trackererrors.NewConfiguration("TARGET_PRODUCT_PRICE must be a positive decimal", nil)
	}
	if _, err := mail.ParseAddress(c.EmailSender); err != nil {
		return trackererrors.NewConfiguration("EMAIL_SENDER is not a valid address", err)
	}
	if len(c.EmailRecipients) == 0 {
		return trackererrors.NewConfiguration("EMAIL_RECIPIENTS must list at least one address", nil)
	}
	for _, r := range c.EmailRecipients {
		if _, err := mail.ParseAddress(r); err != nil {
			return trackererrors.NewConfiguration(fmt.Sprintf("EMAIL_RECIPIENTS entry %q is not a valid address", r), err)
		}
	}
	if c.EmailContentType != "plain" && c.EmailContentType != "html" {
		return trackererrors.NewConfiguration("EMAIL_CONTENT_TYPE must be plain or html", nil)
	}
	if c.SMTPHost == "" {
		return trackererrors.NewConfiguration("SMTP_SERVER_HOST is required", nil)
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return trackererrors.NewConfiguration("SMTP_SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// RequestHeaders returns the headers presented when fetching the product page
func (c *Config) RequestHeaders() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", c.UserAgent)
	h.Set("Accept-Language", c.AcceptLang)
	return h
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma separated value, dropping empty entries
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
