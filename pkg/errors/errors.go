package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypeStore represents pet store errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeNotFound represents unknown shop lookups
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a scraper-specific error
type ScrapeError struct {
	Type    ErrorType
	ShopID  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.ShopID, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.ShopID, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *ScrapeError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork:
		return true
	case ErrorTypeRateLimit:
		return false
	case ErrorTypeParsing:
		return false
	default:
		return false
	}
}

// New creates a new ScrapeError
func New(errType ErrorType, shopID, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		ShopID:  shopID,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(shopID, message string, err error) *ScrapeError {
	return New(ErrorTypeNetwork, shopID, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(shopID, message string, err error) *ScrapeError {
	return New(ErrorTypeParsing, shopID, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(shopID string, duration time.Duration) *ScrapeError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, shopID, message, nil)
}

// NewCache creates a new cache error
func NewCache(shopID, message string, err error) *ScrapeError {
	return New(ErrorTypeCache, shopID, message, err)
}

// NewStore creates a new store error
func NewStore(message string, err error) *ScrapeError {
	return New(ErrorTypeStore, "", message, err)
}

// NewNotFound creates a new not-found error for an unregistered shop id
func NewNotFound(shopID string) *ScrapeError {
	return New(ErrorTypeNotFound, shopID, "Shop not found", nil)
}

// NewValidation creates a new validation error
func NewValidation(shopID, message string) *ScrapeError {
	return New(ErrorTypeValidation, shopID, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}
