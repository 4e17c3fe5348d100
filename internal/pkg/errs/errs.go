package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error class. Callers classify errors with errors.Is
// against these sentinels rather than inspecting concrete types.
var (
	ErrValueIsRequired       = errors.New("value is required")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrObjectNotFound        = errors.New("object not found")
	ErrCredentialExpired     = errors.New("credential expired")
	ErrCredentialAlreadyUsed = errors.New("credential already used")
	ErrNotAuthorized         = errors.New("not authorized")
	ErrTransient             = errors.New("transient failure")
)

// sanitize flattens a value into a single-line string for error messages.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a document or aggregate could not be found.
// Callers typically respond by dropping the stale reference from their view.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// CredentialExpiredError indicates a one-time credential was presented after its
// expiry instant. The backing record is deleted by the caller, so a retry must
// re-issue a fresh credential.
type CredentialExpiredError struct {
	CredentialID string
	Cause        error
}

func NewCredentialExpiredError(credentialID string) *CredentialExpiredError {
	return &CredentialExpiredError{CredentialID: credentialID}
}

func NewCredentialExpiredErrorWithCause(credentialID string, cause error) *CredentialExpiredError {
	return &CredentialExpiredError{CredentialID: credentialID, Cause: cause}
}

func (e *CredentialExpiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrCredentialExpired, e.CredentialID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrCredentialExpired, e.CredentialID)
}

func (e *CredentialExpiredError) Unwrap() error {
	return ErrCredentialExpired
}

// CredentialAlreadyUsedError indicates a one-time credential was replayed after
// a successful verification. The record is preserved as an audit trail.
type CredentialAlreadyUsedError struct {
	CredentialID string
}

func NewCredentialAlreadyUsedError(credentialID string) *CredentialAlreadyUsedError {
	return &CredentialAlreadyUsedError{CredentialID: credentialID}
}

func (e *CredentialAlreadyUsedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCredentialAlreadyUsed, e.CredentialID)
}

func (e *CredentialAlreadyUsedError) Unwrap() error {
	return ErrCredentialAlreadyUsed
}

// NotAuthorizedError indicates the acting seller does not own the targeted object.
type NotAuthorizedError struct {
	ActorID  string
	ObjectID any
}

func NewNotAuthorizedError(actorID string, objectID any) *NotAuthorizedError {
	return &NotAuthorizedError{ActorID: actorID, ObjectID: objectID}
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: actor is: %s, object is: %s", ErrNotAuthorized, e.ActorID, sanitize(e.ObjectID))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// TransientError indicates an infrastructure failure that left state exactly as
// it was before the attempt. Safe to retry from the caller's point of view.
type TransientError struct {
	Operation string
	Cause     error
}

func NewTransientError(operation string, cause error) *TransientError {
	return &TransientError{Operation: operation, Cause: cause}
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTransient, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransient, e.Operation)
}

func (e *TransientError) Unwrap() error {
	return ErrTransient
}
