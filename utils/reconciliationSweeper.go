package utils

import (
	"log"
	"time"

	"iapt/database"
	"iapt/models"

	"github.com/robfig/cron/v3"
)

// InitializeReconciliationSweeper sets up the daily payment reconciliation
// sweep. A completed payment and its profile update are two separate writes,
// so a crash in between can leave a completed payment whose user never got the
// plan. The sweep closes that gap.
func InitializeReconciliationSweeper() {
	log.Println("[RECONCILIATION-SWEEP] Initializing reconciliation sweeper...")

	c := cron.New()

	c.AddFunc("0 6 * * *", func() {
		log.Println("[RECONCILIATION-SWEEP] Running daily reconciliation sweep...")
		SweepUnappliedEntitlements()
		ReportStalePendingPayments()
	})

	c.Start()

	// Also run once at startup to repair anything left by a previous crash
	go func() {
		SweepUnappliedEntitlements()
		ReportStalePendingPayments()
	}()

	log.Println("[RECONCILIATION-SWEEP] Reconciliation sweeper started - runs daily at 6 AM")
}

// SweepUnappliedEntitlements finds users whose profile does not reflect their
// latest completed payment and re-applies the entitlement. Only the most
// recent completed payment per user counts: the plan projection is
// last-write-wins, older payments must never overwrite a newer one.
// Re-applying is an idempotent overwrite, so repeating it is safe.
func SweepUnappliedEntitlements() {
	db := database.Database.Db

	var payments []models.Payment
	err := db.
		Where("status = ? AND is_deleted = false", models.PaymentStatusCompleted).
		Order("created_at desc, id desc").
		Find(&payments).Error
	if err != nil {
		log.Printf("[RECONCILIATION-SWEEP] Error fetching completed payments: %v", err)
		return
	}

	latest := make(map[uint]models.Payment)
	for _, payment := range payments {
		if _, seen := latest[payment.UserID]; !seen {
			latest[payment.UserID] = payment
		}
	}

	for userID, payment := range latest {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
			continue
		}
		if user.PlanActive && user.Plan == string(payment.Plan) {
			continue
		}

		err := db.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"plan":        string(payment.Plan),
				"plan_active": true,
			}).Error
		if err != nil {
			log.Printf("[RECONCILIATION-SWEEP] Error applying entitlement for payment %d: %v", payment.ID, err)
			continue
		}
		log.Printf("[RECONCILIATION-SWEEP] Re-applied plan %s for user %d (payment %d)", payment.Plan, userID, payment.ID)
	}
}

// ReportStalePendingPayments logs pending payments older than 24h. They stay
// pending: the provider side may have actually succeeded, so marking them
// failed automatically would be wrong. Support resolves them by hand.
func ReportStalePendingPayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	var stale []models.Payment
	err := db.
		Where("status = ? AND is_deleted = false AND created_at < ?", models.PaymentStatusPending, cutoff).
		Find(&stale).Error
	if err != nil {
		log.Printf("[RECONCILIATION-SWEEP] Error fetching stale pending payments: %v", err)
		return
	}

	for _, payment := range stale {
		log.Printf("[RECONCILIATION-SWEEP] Payment %d (user %d, plan %s, %d XOF) pending since %s",
			payment.ID, payment.UserID, payment.Plan, payment.Amount, payment.CreatedAt.Format(time.RFC3339))
	}
}
