package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API     APIConfig
	Auth    AuthConfig
	Booking BookingConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	TokenPath string
}

type BookingConfig struct {
	// PriceDebounce delays the price recompute after an input change so
	// rapid edits collapse into one request.
	PriceDebounce time.Duration
	// EnforceSeatCapacity caps seat selection at the traveler count.
	// Off by default: seats are optional in the current product.
	EnforceSeatCapacity bool
}

// NewConfig reads configuration from the environment, loading a .env
// file first when one is present in the working directory.
func NewConfig() (*Config, error) {
	godotenv.Load()

	apiCfg, err := newAPIConfig()
	if err != nil {
		return nil, fmt.Errorf("api config error: %w", err)
	}

	authCfg, err := newAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("auth config error: %w", err)
	}

	bookingCfg, err := newBookingConfig()
	if err != nil {
		return nil, fmt.Errorf("booking config error: %w", err)
	}

	return &Config{
		API:     apiCfg,
		Auth:    authCfg,
		Booking: bookingCfg,
	}, nil
}

func newAPIConfig() (APIConfig, error) {
	timeout, err := getDurationFromEnv("API_TIMEOUT", "15s")
	if err != nil {
		return APIConfig{}, fmt.Errorf("timeout parse error: %w", err)
	}

	return APIConfig{
		BaseURL: getEnvOrDefault("API_BASE_URL", "https://api.dubaitostars.com/api"),
		Timeout: timeout,
	}, nil
}

func newAuthConfig() (AuthConfig, error) {
	return AuthConfig{
		TokenPath: getEnvOrDefault("TOKEN_PATH", ""),
	}, nil
}

func newBookingConfig() (BookingConfig, error) {
	debounce, err := getDurationFromEnv("PRICE_DEBOUNCE", "250ms")
	if err != nil {
		return BookingConfig{}, fmt.Errorf("debounce parse error: %w", err)
	}

	enforceSeats, err := strconv.ParseBool(getEnvOrDefault("ENFORCE_SEAT_CAPACITY", "false"))
	if err != nil {
		return BookingConfig{}, fmt.Errorf("seat capacity flag parse error: %w", err)
	}

	return BookingConfig{
		PriceDebounce:       debounce,
		EnforceSeatCapacity: enforceSeats,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationFromEnv(key, defaultValue string) (time.Duration, error) {
	return time.ParseDuration(getEnvOrDefault(key, defaultValue))
}
