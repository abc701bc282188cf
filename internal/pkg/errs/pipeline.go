package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the order-fulfillment pipeline. One sentinel per
// failing stage; typed errors below wrap these so the HTTP layer can map
// each kind to a status code with errors.Is.
var (
	ErrValidation      = errors.New("order validation failed")
	ErrLookup          = errors.New("postal lookup failed")
	ErrAuth            = errors.New("carrier authentication failed")
	ErrProvisioning    = errors.New("pickup location provisioning failed")
	ErrUpstreamOrder   = errors.New("upstream order creation failed")
	ErrRateUnavailable = errors.New("no courier rates available")
	ErrAssignment      = errors.New("awb assignment failed")
)

// ValidationError reports malformed or missing order input. No network
// call is made once validation fails.
type ValidationError struct {
	Message       string
	MissingFields []string
}

// NewValidationError creates a ValidationError with a free-form message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewMissingFieldsError creates a ValidationError listing the absent
// required fields.
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Message:       fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", ")),
		MissingFields: fields,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// LookupError reports that postal resolution for a pincode exhausted
// every strategy (static table, external providers, range heuristic).
type LookupError struct {
	Pincode string
	Message string
}

// NewLookupError creates a LookupError for the given pincode.
func NewLookupError(pincode, message string) *LookupError {
	return &LookupError{Pincode: pincode, Message: message}
}

func (e *LookupError) Error() string {
	return e.Message
}

func (e *LookupError) Unwrap() error {
	return ErrLookup
}

// AuthError reports a failed login against the upstream carrier API,
// carrying the upstream message when one was returned.
type AuthError struct {
	Message string
	Cause   error
}

// NewAuthError creates an AuthError with the upstream message.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// NewAuthErrorWithCause creates an AuthError wrapping a transport-level
// cause.
func NewAuthErrorWithCause(message string, cause error) *AuthError {
	return &AuthError{Message: message, Cause: cause}
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAuth, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAuth, e.Message)
}

func (e *AuthError) Unwrap() error {
	return ErrAuth
}

// ProvisioningError reports a rejected pickup-location creation.
type ProvisioningError struct {
	Message string
	Cause   error
}

// NewProvisioningError creates a ProvisioningError with the upstream
// message.
func NewProvisioningError(message string) *ProvisioningError {
	return &ProvisioningError{Message: message}
}

// NewProvisioningErrorWithCause creates a ProvisioningError wrapping a
// transport-level cause.
func NewProvisioningErrorWithCause(message string, cause error) *ProvisioningError {
	return &ProvisioningError{Message: message, Cause: cause}
}

func (e *ProvisioningError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrProvisioning, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrProvisioning, e.Message)
}

func (e *ProvisioningError) Unwrap() error {
	return ErrProvisioning
}

// UpstreamOrderError reports a rejected shipment-creation request.
// Payload carries the raw upstream response for caller diagnosis.
type UpstreamOrderError struct {
	Message string
	Payload json.RawMessage
}

// NewUpstreamOrderError creates an UpstreamOrderError carrying the raw
// upstream payload.
func NewUpstreamOrderError(message string, payload json.RawMessage) *UpstreamOrderError {
	return &UpstreamOrderError{Message: message, Payload: payload}
}

func (e *UpstreamOrderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUpstreamOrder, e.Message)
}

func (e *UpstreamOrderError) Unwrap() error {
	return ErrUpstreamOrder
}

// RateUnavailableError reports that the rate query yielded no couriers.
type RateUnavailableError struct {
	Message string
}

// NewRateUnavailableError creates a RateUnavailableError.
func NewRateUnavailableError(message string) *RateUnavailableError {
	return &RateUnavailableError{Message: message}
}

func (e *RateUnavailableError) Error() string {
	return e.Message
}

func (e *RateUnavailableError) Unwrap() error {
	return ErrRateUnavailable
}

// AssignmentError reports a rejected AWB assignment. Payload carries the
// raw upstream response for caller diagnosis.
type AssignmentError struct {
	Message string
	Payload json.RawMessage
}

// NewAssignmentError creates an AssignmentError carrying the raw
// upstream payload.
func NewAssignmentError(message string, payload json.RawMessage) *AssignmentError {
	return &AssignmentError{Message: message, Payload: payload}
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAssignment, e.Message)
}

func (e *AssignmentError) Unwrap() error {
	return ErrAssignment
}
