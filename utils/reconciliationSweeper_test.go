package utils

import (
	"testing"
	"time"

	"iapt/database"
	"iapt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSweeperDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func completedPayment(t *testing.T, db *gorm.DB, userID uint, plan models.PlanType, createdAt time.Time) models.Payment {
	t.Helper()

	payment := models.Payment{
		UserID: userID,
		Amount: 5000,
		Plan:   plan,
		Status: models.PaymentStatusCompleted,
	}
	payment.CreatedAt = createdAt
	require.NoError(t, db.Create(&payment).Error)
	return payment
}

func TestSweepUnappliedEntitlements(t *testing.T) {
	t.Run("AppliesMissingEntitlement", func(t *testing.T) {
		db := setupSweeperDB(t)

		user := models.User{FullName: "Moussa Ndiaye", Email: "moussa@example.sn", Password: "x"}
		require.NoError(t, db.Create(&user).Error)
		completedPayment(t, db, user.ID, models.PlanEssentiel, time.Now())

		SweepUnappliedEntitlements()

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "essentiel", stored.Plan)
		assert.True(t, stored.PlanActive)
	})

	t.Run("OlderPaymentNeverOverwritesNewerPlan", func(t *testing.T) {
		db := setupSweeperDB(t)

		user := models.User{
			FullName:   "Awa Sarr",
			Email:      "awa@example.sn",
			Password:   "x",
			Plan:       "decouverte",
			PlanActive: true,
		}
		require.NoError(t, db.Create(&user).Error)

		// Older premium payment, then a newer decouverte payment already
		// reflected in the profile
		completedPayment(t, db, user.ID, models.PlanPremium, time.Now().Add(-48*time.Hour))
		completedPayment(t, db, user.ID, models.PlanDecouverte, time.Now())

		// Repeated sweeps must leave the profile on the latest payment
		SweepUnappliedEntitlements()
		SweepUnappliedEntitlements()

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "decouverte", stored.Plan)
		assert.True(t, stored.PlanActive)
	})

	t.Run("RepairsCrashedGrantFromLatestPayment", func(t *testing.T) {
		db := setupSweeperDB(t)

		user := models.User{FullName: "Fatou Ba", Email: "fatou@example.sn", Password: "x"}
		require.NoError(t, db.Create(&user).Error)

		completedPayment(t, db, user.ID, models.PlanDecouverte, time.Now().Add(-48*time.Hour))
		completedPayment(t, db, user.ID, models.PlanPremium, time.Now())

		SweepUnappliedEntitlements()

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "premium", stored.Plan)
		assert.True(t, stored.PlanActive)
	})
}
