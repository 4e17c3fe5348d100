package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	// UseCaseSecureDispatch is the use-case literal embedded in record ids for
	// the pickup handover protocol.
	UseCaseSecureDispatch = "SECURE_DISPATCH"

	// CodeLength is the number of digits in a one-time code.
	CodeLength = 6

	// Validity is how long an issued code can be redeemed.
	Validity = 10 * time.Minute
)

// Record statuses. A record is created pending and flips to verified exactly
// once; there is no other state.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record was not created via
	// NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

	codePattern = regexp.MustCompile(`^\d{6}$`)
)

// PlainCode is a 6-digit one-time code in plaintext form. It exists only in
// memory between generation and hashing, and inside the stored delivery
// message; it is never returned to the issuing caller.
type PlainCode string

// NewCode generates a 6-digit code uniformly distributed over
// 100000-999999 from a cryptographically secure source.
func NewCode() (PlainCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return PlainCode(fmt.Sprintf("%06d", n.Int64()+100000)), nil
}

// ParseCode validates caller-entered input as a 6-digit numeric code.
func ParseCode(entered string) (PlainCode, error) {
	if !codePattern.MatchString(entered) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"otp", fmt.Errorf("code must be exactly %d digits", CodeLength))
	}
	return PlainCode(entered), nil
}

// DispatchDetails is the group summary snapshot captured at issuance time.
// It records what the code was minted to authorize.
type DispatchDetails struct {
	GroupKey     string
	OperatorID   string
	JREID        string
	OrdersCount  int
	TotalItems   int
	TotalWeight  float64
	TotalPackets int
}

// Record is the aggregate for a one-time dispatch credential.
//
// Lifecycle: created pending by the OTP authority, mutated exactly once to
// verified by the dispatch verifier, deleted when found expired. A record
// found already verified is consumed and rejected for reuse. Issuing a new
// code for the same mobile and use case overwrites the previous record
// (last write wins).
type Record struct {
	id              string
	mobile          kernel.Mobile
	otpHash         string
	useCase         string
	status          string
	createdAt       time.Time
	expiresAt       time.Time
	message         string
	sentByAdmin     bool
	dispatchDetails DispatchDetails
	verifiedAt      *time.Time
	verifiedBy      string

	isConstructed bool
}

// Snapshot is the flat persistence representation of a Record.
type Snapshot struct {
	ID              string
	Mobile          kernel.Mobile
	OTPHash         string
	UseCase         string
	Status          string
	CreatedAt       time.Time
	ExpiresAt       time.Time
	Message         string
	SentByAdmin     bool
	DispatchDetails DispatchDetails
	VerifiedAt      *time.Time
	VerifiedBy      string
}

// IssueID builds the record id for a mobile and the secure-dispatch use case:
// "+91<mobile>_SECURE_DISPATCH".
func IssueID(mobile kernel.Mobile) string {
	return mobile.E164() + "_" + UseCaseSecureDispatch
}

// ComposeMessage renders the human-readable delivery message embedding the
// plaintext code and the dispatch summary, for out-of-band delivery to the
// runner's mobile.
func ComposeMessage(code PlainCode, details DispatchDetails) string {
	return fmt.Sprintf(
		"Secure Dispatch OTP: %s\n"+
			"Operator: %s\n"+
			"Total Packets: %d\n"+
			"Total Items: %d\n"+
			"Gross Weight: %vg\n"+
			"Valid for %d minutes.",
		code, details.OperatorID, details.TotalPackets, details.TotalItems,
		details.TotalWeight, int(Validity.Minutes()))
}

// NewRecord creates a pending record for the given code, bound to the mobile
// and the secure-dispatch use case. The code is salted and hashed with bcrypt;
// the plaintext survives only inside the composed message.
func NewRecord(
	mobile kernel.Mobile,
	code PlainCode,
	details DispatchDetails,
	now time.Time,
) (*Record, error) {
	if err := mobile.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseCode(string(code)); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Record{
		id:              IssueID(mobile),
		mobile:          mobile,
		otpHash:         string(hash),
		useCase:         UseCaseSecureDispatch,
		status:          StatusPending,
		createdAt:       now,
		expiresAt:       now.Add(Validity),
		message:         ComposeMessage(code, details),
		dispatchDetails: details,
		isConstructed:   true,
	}, nil
}

// RestoreRecord reconstructs a record from a persistence snapshot.
func RestoreRecord(s Snapshot) (*Record, error) {
	if s.ID == "" {
		return nil, errs.NewValueIsRequiredError("otpId")
	}
	if err := s.Mobile.Validate(); err != nil {
		return nil, err
	}
	if s.Status != StatusPending && s.Status != StatusVerified {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid otp status", s.Status))
	}

	return &Record{
		id:              s.ID,
		mobile:          s.Mobile,
		otpHash:         s.OTPHash,
		useCase:         s.UseCase,
		status:          s.Status,
		createdAt:       s.CreatedAt,
		expiresAt:       s.ExpiresAt,
		message:         s.Message,
		sentByAdmin:     s.SentByAdmin,
		dispatchDetails: s.DispatchDetails,
		verifiedAt:      s.VerifiedAt,
		verifiedBy:      s.VerifiedBy,
		isConstructed:   true,
	}, nil
}

// Snapshot returns the flat persistence representation.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		Mobile:          r.mobile,
		OTPHash:         r.otpHash,
		UseCase:         r.useCase,
		Status:          r.status,
		CreatedAt:       r.createdAt,
		ExpiresAt:       r.expiresAt,
		Message:         r.message,
		SentByAdmin:     r.sentByAdmin,
		DispatchDetails: r.dispatchDetails,
		VerifiedAt:      r.verifiedAt,
		VerifiedBy:      r.verifiedBy,
	}
}

// Validate ensures the record was constructed via NewRecord or RestoreRecord.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's document id ("+91<mobile>_<USE_CASE>").
func (r *Record) ID() string {
	return r.id
}

// Mobile returns the bound mobile number.
func (r *Record) Mobile() kernel.Mobile {
	return r.mobile
}

// UseCase returns the use-case literal.
func (r *Record) UseCase() string {
	return r.useCase
}

// Status returns "pending" or "verified".
func (r *Record) Status() string {
	return r.status
}

// CreatedAt returns the issuance time.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// ExpiresAt returns the expiry instant (issuance + 10 minutes).
func (r *Record) ExpiresAt() time.Time {
	return r.expiresAt
}

// Message returns the out-of-band delivery message. It embeds the plaintext
// code, which is why the message never travels back to the issuing caller.
func (r *Record) Message() string {
	return r.message
}

// DispatchDetails returns the group summary captured at issuance.
func (r *Record) DispatchDetails() DispatchDetails {
	return r.dispatchDetails
}

// VerifiedAt returns when the record was verified, nil while pending.
func (r *Record) VerifiedAt() *time.Time {
	return r.verifiedAt
}

// VerifiedBy returns the seller who verified the code, empty while pending.
func (r *Record) VerifiedBy() string {
	return r.verifiedBy
}

// IsExpired reports whether now is past the expiry instant.
func (r *Record) IsExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// IsVerified reports whether the record has already been consumed.
func (r *Record) IsVerified() bool {
	return r.status == StatusVerified
}

// Matches compares an entered code against the stored hash.
func (r *Record) Matches(code PlainCode) bool {
	return bcrypt.CompareHashAndPassword([]byte(r.otpHash), []byte(code)) == nil
}

// MarkVerified consumes the record. Valid exactly once, from pending.
func (r *Record) MarkVerified(sellerID string, now time.Time) error {
	if sellerID == "" {
		return errs.NewValueIsRequiredError("sellerId")
	}
	if r.status == StatusVerified {
		return errs.NewCredentialAlreadyUsedError(r.id)
	}

	r.status = StatusVerified
	t := now
	r.verifiedAt = &t
	r.verifiedBy = sellerID
	return nil
}
