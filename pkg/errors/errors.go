package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents page retrieval errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit represents a storefront refusing the request
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeExtraction represents expected markup that was not found
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeDecoding represents an embedded data island that could not be decoded
	ErrorTypeDecoding ErrorType = "decoding"
	// ErrorTypeParsing represents a price string that could not be converted to a decimal
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeDelivery represents notification delivery errors
	ErrorTypeDelivery ErrorType = "delivery"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// TrackerError represents an error raised by one of the tracker components
type TrackerError struct {
	Type      ErrorType
	Component string
	Message   string
	Err       error
	Time      time.Time
}

// Error implements the error interface
func (e *TrackerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Component, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Component, e.Message)
}

// Unwrap returns the underlying error
func (e *TrackerError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether the error must terminate the run with a failure
// instead of ending it quietly without a notification.
func (e *TrackerError) IsFatal() bool {
	switch e.Type {
	case ErrorTypeDelivery, ErrorTypeConfiguration:
		return true
	default:
		return false
	}
}

// New creates a new TrackerError
func New(errType ErrorType, component, message string, err error) *TrackerError {
	return &TrackerError{
		Type:      errType,
		Component: component,
		Message:   message,
		Err:       err,
		Time:      time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(component, message string, err error) *TrackerError {
	return New(ErrorTypeNetwork, component, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(component string, err error) *TrackerError {
	return New(ErrorTypeRateLimit, component, "request refused by storefront", err)
}

// NewExtraction creates a new extraction error
func NewExtraction(component, message string) *TrackerError {
	return New(ErrorTypeExtraction, component, message, nil)
}

// NewDecoding creates a new decoding error
func NewDecoding(component, message string, err error) *TrackerError {
	return New(ErrorTypeDecoding, component, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(component, message string, err error) *TrackerError {
	return New(ErrorTypeParsing, component, message, err)
}

// NewDelivery creates a new delivery error
func NewDelivery(component, message string, err error) *TrackerError {
	return New(ErrorTypeDelivery, component, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *TrackerError {
	return New(ErrorTypeConfiguration, "config", message, err)
}

// TypeOf returns the ErrorType of the first TrackerError in err's chain,
// or an empty ErrorType when there is none.
func TypeOf(err error) ErrorType {
	var te *TrackerError
	if stderrors.As(err, &te) {
		return te.Type
	}
	return ""
}
