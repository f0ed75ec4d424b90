package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanType defines the subscription plan bought with a payment
type PlanType string

const (
	PlanDecouverte PlanType = "decouverte"
	PlanEssentiel  PlanType = "essentiel"
	PlanPremium    PlanType = "premium"
)

// IsValidPlan reports whether s is a known plan value
func IsValidPlan(s string) bool {
	switch PlanType(s) {
	case PlanDecouverte, PlanEssentiel, PlanPremium:
		return true
	}
	return false
}

// PaymentStatus defines the status of a payment.
// pending is the only non-terminal state: a payment moves exactly once to
// completed, failed or cancelled and never leaves a terminal state.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment tracks a mobile-money checkout and is the audit trail for the
// user's plan entitlement
type Payment struct {
	gorm.Model
	UserID        uint           `gorm:"not null;index" json:"userId"`
	Amount        int            `gorm:"not null" json:"amount"` // XOF, no subunits
	Currency      string         `gorm:"type:varchar(10);default:'XOF'" json:"currency"`
	Plan          PlanType       `gorm:"type:varchar(20);not null" json:"plan"`
	Status        PaymentStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentMethod string         `gorm:"type:varchar(50);default:'wave'" json:"paymentMethod"`
	TransactionID string         `gorm:"type:varchar(100);index" json:"transactionId"` // provider session id, empty until a session exists
	ProviderData  datatypes.JSON `json:"providerData"`                                 // raw provider response, kept for audit/debug
	IsDeleted     bool           `gorm:"default:false" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
