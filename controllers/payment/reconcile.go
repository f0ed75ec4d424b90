package paymentController

import (
	"errors"

	"iapt/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrPaymentTerminal is returned when reconciliation is asked to complete a
// payment already in failed or cancelled state. Terminal states are final.
var ErrPaymentTerminal = errors.New("payment is in a terminal state")

// ReconcilePayment transitions a pending payment to completed and grants the
// paid plan to the user. It is the single completion path for both the
// provider webhook and the client success-page verify, which can race each
// other within the same second.
//
// The transition is a conditional update (status must still be pending), so
// the database itself arbitrates the race: exactly one caller flips the row,
// the other observes zero affected rows and skips every side effect. Calling
// this on an already-completed payment is a success no-op.
//
// sessionID and raw are optional; the webhook provides them, the success-page
// verify does not.
func ReconcilePayment(db *gorm.DB, paymentID uint, sessionID string, raw datatypes.JSON) (*models.Payment, bool, error) {
	patch := map[string]interface{}{
		"status": models.PaymentStatusCompleted,
	}
	if sessionID != "" {
		patch["transaction_id"] = sessionID
	}
	if raw != nil {
		patch["provider_data"] = raw
	}

	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ? AND is_deleted = false", paymentID, models.PaymentStatusPending).
		Updates(patch)
	if res.Error != nil {
		return nil, false, res.Error
	}

	var payment models.Payment
	if err := db.Where("id = ? AND is_deleted = false", paymentID).First(&payment).Error; err != nil {
		return nil, false, err
	}

	if res.RowsAffected == 0 {
		// Lost the race or the payment was already terminal
		switch payment.Status {
		case models.PaymentStatusCompleted:
			return &payment, false, nil
		default:
			return &payment, false, ErrPaymentTerminal
		}
	}

	// Entitlement grant: plain overwrite of the profile projection.
	// Last-write-wins across multiple completed payments.
	err := db.Model(&models.User{}).
		Where("id = ?", payment.UserID).
		Updates(map[string]interface{}{
			"plan":        string(payment.Plan),
			"plan_active": true,
		}).Error
	if err != nil {
		// Payment is completed but the grant failed; the reconciliation
		// sweep picks this up.
		return &payment, true, err
	}

	return &payment, true, nil
}
