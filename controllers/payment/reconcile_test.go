package paymentController

import (
	"testing"

	"iapt/database"
	"iapt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func createUserWithPayment(t *testing.T, db *gorm.DB, plan models.PlanType, status models.PaymentStatus) (*models.User, *models.Payment) {
	t.Helper()

	user := models.User{FullName: "Aminata Diop", Email: "aminata@example.sn", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	payment := models.Payment{
		UserID:   user.ID,
		Amount:   5000,
		Currency: "XOF",
		Plan:     plan,
		Status:   status,
	}
	require.NoError(t, db.Create(&payment).Error)
	return &user, &payment
}

func TestReconcilePayment(t *testing.T) {
	t.Run("PendingCompletesAndGrantsPlan", func(t *testing.T) {
		db := setupTestDB(t)
		user, payment := createUserWithPayment(t, db, models.PlanEssentiel, models.PaymentStatusPending)

		raw := datatypes.JSON(`{"id":"cos-abc","checkout_status":"complete"}`)
		result, applied, err := ReconcilePayment(db, payment.ID, "cos-abc", raw)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, models.PaymentStatusCompleted, result.Status)
		assert.Equal(t, "cos-abc", result.TransactionID)
		assert.JSONEq(t, string(raw), string(result.ProviderData))

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "essentiel", stored.Plan)
		assert.True(t, stored.PlanActive)
	})

	t.Run("SecondCallIsNoOp", func(t *testing.T) {
		db := setupTestDB(t)
		_, payment := createUserWithPayment(t, db, models.PlanPremium, models.PaymentStatusPending)

		_, applied, err := ReconcilePayment(db, payment.ID, "cos-1", nil)
		require.NoError(t, err)
		assert.True(t, applied)

		// Webhook and success-page verify both reconcile; the loser must
		// observe success without re-applying anything
		result, applied, err := ReconcilePayment(db, payment.ID, "cos-other", nil)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, models.PaymentStatusCompleted, result.Status)
		assert.Equal(t, "cos-1", result.TransactionID)
	})

	t.Run("FailedPaymentStaysFailed", func(t *testing.T) {
		db := setupTestDB(t)
		user, payment := createUserWithPayment(t, db, models.PlanPremium, models.PaymentStatusFailed)

		result, applied, err := ReconcilePayment(db, payment.ID, "cos-x", nil)
		assert.ErrorIs(t, err, ErrPaymentTerminal)
		assert.False(t, applied)
		assert.Equal(t, models.PaymentStatusFailed, result.Status)

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.False(t, stored.PlanActive)
	})

	t.Run("CancelledPaymentStaysCancelled", func(t *testing.T) {
		db := setupTestDB(t)
		_, payment := createUserWithPayment(t, db, models.PlanDecouverte, models.PaymentStatusCancelled)

		result, applied, err := ReconcilePayment(db, payment.ID, "", nil)
		assert.ErrorIs(t, err, ErrPaymentTerminal)
		assert.False(t, applied)
		assert.Equal(t, models.PaymentStatusCancelled, result.Status)
	})

	t.Run("UnknownPayment", func(t *testing.T) {
		db := setupTestDB(t)

		_, _, err := ReconcilePayment(db, 424242, "", nil)
		assert.Error(t, err)
	})

	t.Run("LaterPaymentOverwritesPlan", func(t *testing.T) {
		db := setupTestDB(t)
		user, first := createUserWithPayment(t, db, models.PlanPremium, models.PaymentStatusPending)

		_, _, err := ReconcilePayment(db, first.ID, "cos-a", nil)
		require.NoError(t, err)

		second := models.Payment{UserID: user.ID, Amount: 2000, Plan: models.PlanDecouverte, Status: models.PaymentStatusPending}
		require.NoError(t, db.Create(&second).Error)
		_, _, err = ReconcilePayment(db, second.ID, "cos-b", nil)
		require.NoError(t, err)

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "decouverte", stored.Plan)
		assert.True(t, stored.PlanActive)
	})

	t.Run("VerifyWithoutSessionKeepsExistingTransactionID", func(t *testing.T) {
		db := setupTestDB(t)
		_, payment := createUserWithPayment(t, db, models.PlanEssentiel, models.PaymentStatusPending)
		require.NoError(t, db.Model(payment).Update("transaction_id", "cos-from-checkout").Error)

		result, applied, err := ReconcilePayment(db, payment.ID, "", nil)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, "cos-from-checkout", result.TransactionID)
	})
}
