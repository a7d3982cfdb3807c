package model

import (
	"time"

	"cowork/shared/model"
)

const (
	TableName  = "otp_codes"
	EntityName = "otp code"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPurpose    = "purpose"
	FieldCodeHash   = "code_hash"
	FieldAttempts   = "attempts"
	FieldExpiresAt  = "expires_at"
	FieldVerifiedAt = "verified_at"
	FieldConsumedAt = "consumed_at"
)

const (
	PurposeSignup = "signup"
	PurposeLogin  = "login"
	PurposeReset  = "reset"
)

// OTP is a one-time code sent to an email address. Only the bcrypt hash of the code is stored.
// A code is usable until it expires, is verified or runs out of attempts. A verified reset code
// is consumed by the password change it authorises.
type OTP struct {
	ID         string     `db:"id"`
	Email      string     `db:"email"`
	Purpose    string     `db:"purpose"`
	CodeHash   string     `db:"code_hash"`
	Attempts   int        `db:"attempts"`
	ExpiresAt  time.Time  `db:"expires_at"`
	VerifiedAt *time.Time `db:"verified_at"`
	ConsumedAt *time.Time `db:"consumed_at"`
	model.Metadata
}

func (o OTP) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
