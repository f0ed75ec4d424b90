package controllers

import (
	"testing"
	"time"

	"iapt/database"
	courseModels "iapt/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func question(id uint, answer string) courseModels.QuizQuestion {
	q := courseModels.QuizQuestion{CorrectAnswer: answer}
	q.ID = id
	return q
}

func TestScoreQuizAttempt(t *testing.T) {
	questions := []courseModels.QuizQuestion{
		question(1, "Paris"),
		question(2, "vrai"),
		question(3, "42"),
	}

	t.Run("AllCorrect", func(t *testing.T) {
		result, err := ScoreQuizAttempt(questions, map[uint]string{1: "Paris", 2: "vrai", 3: "42"}, 70)
		require.NoError(t, err)
		assert.Equal(t, 100, result.Score)
		assert.True(t, result.Passed)
		assert.Equal(t, 3, result.Correct)
		assert.Equal(t, 3, result.Total)
	})

	t.Run("RoundsHalfUp", func(t *testing.T) {
		// 2 of 3 is 66.67, rounds to 67
		result, err := ScoreQuizAttempt(questions, map[uint]string{1: "Paris", 2: "vrai", 3: "wrong"}, 70)
		require.NoError(t, err)
		assert.Equal(t, 67, result.Score)
		assert.False(t, result.Passed)
	})

	t.Run("PassAtExactThreshold", func(t *testing.T) {
		result, err := ScoreQuizAttempt(questions, map[uint]string{1: "Paris", 2: "vrai", 3: "wrong"}, 67)
		require.NoError(t, err)
		assert.Equal(t, 67, result.Score)
		assert.True(t, result.Passed)
	})

	t.Run("MissingAnswerCountsWrong", func(t *testing.T) {
		result, err := ScoreQuizAttempt(questions, map[uint]string{1: "Paris"}, 70)
		require.NoError(t, err)
		assert.Equal(t, 33, result.Score)
		assert.Equal(t, 1, result.Correct)
	})

	t.Run("MatchingIsCaseSensitive", func(t *testing.T) {
		result, err := ScoreQuizAttempt(questions, map[uint]string{1: "paris", 2: "vrai", 3: "42"}, 70)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Correct)
	})

	t.Run("DefaultPassingScoreWhenUnset", func(t *testing.T) {
		result, err := ScoreQuizAttempt(questions, map[uint]string{1: "Paris", 2: "vrai", 3: "wrong"}, 0)
		require.NoError(t, err)
		// 67 against the default 70
		assert.False(t, result.Passed)

		result, err = ScoreQuizAttempt(questions, map[uint]string{1: "Paris", 2: "vrai", 3: "42"}, 0)
		require.NoError(t, err)
		assert.True(t, result.Passed)
	})

	t.Run("NoQuestionsRejected", func(t *testing.T) {
		_, err := ScoreQuizAttempt(nil, map[uint]string{1: "Paris"}, 70)
		assert.ErrorIs(t, err, ErrNoQuestions)
	})
}

func TestProgressAfterModule(t *testing.T) {
	assert.Equal(t, 25, ProgressAfterModule(0, 4))
	assert.Equal(t, 50, ProgressAfterModule(1, 4))
	assert.Equal(t, 100, ProgressAfterModule(3, 4))
	assert.Equal(t, 33, ProgressAfterModule(0, 3))
	assert.Equal(t, 67, ProgressAfterModule(1, 3))
	assert.Equal(t, 100, ProgressAfterModule(0, 1))
	assert.Equal(t, 0, ProgressAfterModule(0, 0))
}

func TestAdvanceEnrollment(t *testing.T) {
	t.Run("AdvancesForward", func(t *testing.T) {
		db := setupTestDB(t)
		enrollment := courseModels.Enrollment{UserID: 1, CourseID: 1, EnrolledAt: time.Now()}
		require.NoError(t, db.Create(&enrollment).Error)

		completed, err := AdvanceEnrollment(db, &enrollment, 0, 4)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, 25, enrollment.ProgressPercent)

		var stored courseModels.Enrollment
		require.NoError(t, db.First(&stored, enrollment.ID).Error)
		assert.Equal(t, 25, stored.ProgressPercent)
		assert.False(t, stored.Completed)
		assert.Nil(t, stored.CompletedAt)
	})

	t.Run("RetakeOfEarlierModuleNeverLowersProgress", func(t *testing.T) {
		db := setupTestDB(t)
		enrollment := courseModels.Enrollment{UserID: 1, CourseID: 1, ProgressPercent: 75, EnrolledAt: time.Now()}
		require.NoError(t, db.Create(&enrollment).Error)

		completed, err := AdvanceEnrollment(db, &enrollment, 0, 4)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, 75, enrollment.ProgressPercent)

		var stored courseModels.Enrollment
		require.NoError(t, db.First(&stored, enrollment.ID).Error)
		assert.Equal(t, 75, stored.ProgressPercent)
	})

	t.Run("CompletionStampedOnce", func(t *testing.T) {
		db := setupTestDB(t)
		enrollment := courseModels.Enrollment{UserID: 1, CourseID: 1, ProgressPercent: 75, EnrolledAt: time.Now()}
		require.NoError(t, db.Create(&enrollment).Error)

		completed, err := AdvanceEnrollment(db, &enrollment, 3, 4)
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, 100, enrollment.ProgressPercent)
		require.NotNil(t, enrollment.CompletedAt)
		firstStamp := *enrollment.CompletedAt

		// A repeat pass on the last module is a no-op
		completed, err = AdvanceEnrollment(db, &enrollment, 3, 4)
		require.NoError(t, err)
		assert.False(t, completed)
		require.NotNil(t, enrollment.CompletedAt)
		assert.Equal(t, firstStamp, *enrollment.CompletedAt)
	})
}

func TestCheckPrerequisites(t *testing.T) {
	db := setupTestDB(t)

	modules := make([]courseModels.Module, 3)
	for i := range modules {
		modules[i] = courseModels.Module{CourseID: 1, Title: "Module", SortOrder: i}
		require.NoError(t, db.Create(&modules[i]).Error)
	}

	quiz1 := courseModels.Quiz{ModuleID: modules[0].ID, Title: "Quiz 1", PassingScore: 70}
	quiz2 := courseModels.Quiz{ModuleID: modules[1].ID, Title: "Quiz 2", PassingScore: 70}
	require.NoError(t, db.Create(&quiz1).Error)
	require.NoError(t, db.Create(&quiz2).Error)

	const userID = uint(7)

	t.Run("FirstModuleAlwaysOpen", func(t *testing.T) {
		ok, err := checkPrerequisites(db, userID, modules, 0)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("BlockedWithoutPriorPass", func(t *testing.T) {
		ok, err := checkPrerequisites(db, userID, modules, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("FailedAttemptDoesNotUnlock", func(t *testing.T) {
		attempt := courseModels.QuizAttempt{QuizID: quiz1.ID, UserID: userID, Score: 50, Passed: false, AttemptedAt: time.Now()}
		require.NoError(t, db.Create(&attempt).Error)

		ok, err := checkPrerequisites(db, userID, modules, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("PassUnlocksNextModule", func(t *testing.T) {
		attempt := courseModels.QuizAttempt{QuizID: quiz1.ID, UserID: userID, Score: 80, Passed: true, AttemptedAt: time.Now()}
		require.NoError(t, db.Create(&attempt).Error)

		ok, err := checkPrerequisites(db, userID, modules, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		// Module 2 still needs the quiz of module 1
		ok, err = checkPrerequisites(db, userID, modules, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("AnotherUsersPassDoesNotCount", func(t *testing.T) {
		attempt := courseModels.QuizAttempt{QuizID: quiz2.ID, UserID: 99, Score: 100, Passed: true, AttemptedAt: time.Now()}
		require.NoError(t, db.Create(&attempt).Error)

		ok, err := checkPrerequisites(db, userID, modules, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestIssueCertificate(t *testing.T) {
	db := setupTestDB(t)

	cert, err := issueCertificate(db, 1, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, cert.CertificateNumber)
	assert.Contains(t, cert.CertificateNumber, "IAPT-")

	// Second call returns the same certificate
	again, err := issueCertificate(db, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, again.ID)
	assert.Equal(t, cert.CertificateNumber, again.CertificateNumber)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
