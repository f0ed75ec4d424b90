package controllers

import (
	"errors"
	"math"
	"time"

	courseModels "iapt/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNoQuestions is returned when a quiz with zero questions is scored.
// Such a quiz cannot produce a percentage and the submission must be rejected.
var ErrNoQuestions = errors.New("quiz has no questions")

// ScoreResult holds the outcome of one scored quiz submission
type ScoreResult struct {
	Score   int  `json:"score"` // 0..100
	Passed  bool `json:"passed"`
	Correct int  `json:"correct"`
	Total   int  `json:"total"`
}

// ScoreQuizAttempt compares submitted answers against the quiz questions.
// Matching is exact string equality, case-sensitive. A question with no
// submitted answer counts as incorrect. passingScore falls back to the
// default when unset.
func ScoreQuizAttempt(questions []courseModels.QuizQuestion, answers map[uint]string, passingScore int) (ScoreResult, error) {
	total := len(questions)
	if total == 0 {
		return ScoreResult{}, ErrNoQuestions
	}
	if passingScore <= 0 {
		passingScore = courseModels.DefaultPassingScore
	}

	correct := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))

	return ScoreResult{
		Score:   score,
		Passed:  score >= passingScore,
		Correct: correct,
		Total:   total,
	}, nil
}

// ProgressAfterModule derives the course progress percentage from the
// position of the module whose quiz was just passed (0-based) within the
// ordered module list.
func ProgressAfterModule(moduleIndex, totalModules int) int {
	if totalModules <= 0 {
		return 0
	}
	return int(math.Round(float64(moduleIndex+1) / float64(totalModules) * 100))
}

// AdvanceEnrollment applies a quiz pass for the module at moduleIndex to the
// enrollment. Progress is monotonic: a pass on an earlier module never lowers
// the stored percentage. CompletedAt is stamped exactly once, on the
// transition to completed. Returns true when the course was completed by this
// call.
func AdvanceEnrollment(db *gorm.DB, enrollment *courseModels.Enrollment, moduleIndex, totalModules int) (bool, error) {
	newProgress := ProgressAfterModule(moduleIndex, totalModules)
	if newProgress <= enrollment.ProgressPercent {
		return false, nil
	}

	enrollment.ProgressPercent = newProgress
	completedNow := false
	if newProgress >= 100 && !enrollment.Completed {
		enrollment.Completed = true
		now := time.Now()
		enrollment.CompletedAt = &now
		completedNow = true
	}

	if err := db.Save(enrollment).Error; err != nil {
		return false, err
	}
	return completedNow, nil
}

// checkPrerequisites verifies that every module before moduleIndex that
// carries a quiz has at least one passing attempt by the user. Module order is
// not trusted from the client, so the gate lives here and not in the UI.
func checkPrerequisites(db *gorm.DB, userID uint, modules []courseModels.Module, moduleIndex int) (bool, error) {
	if moduleIndex <= 0 {
		return true, nil
	}

	priorModuleIDs := make([]uint, 0, moduleIndex)
	for _, m := range modules[:moduleIndex] {
		priorModuleIDs = append(priorModuleIDs, m.ID)
	}

	var priorQuizzes []courseModels.Quiz
	if err := db.Where("module_id IN ? AND is_deleted = false", priorModuleIDs).Find(&priorQuizzes).Error; err != nil {
		return false, err
	}
	if len(priorQuizzes) == 0 {
		return true, nil
	}

	quizIDs := make([]uint, len(priorQuizzes))
	for i, q := range priorQuizzes {
		quizIDs[i] = q.ID
	}

	var passedCount int64
	err := db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id IN ? AND passed = true", userID, quizIDs).
		Distinct("quiz_id").
		Count(&passedCount).Error
	if err != nil {
		return false, err
	}

	return passedCount == int64(len(priorQuizzes)), nil
}

// issueCertificate creates the completion certificate for the course unless
// one already exists for the user.
func issueCertificate(db *gorm.DB, userID, courseID uint) (*courseModels.Certificate, error) {
	var existing courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&existing).Error; err == nil {
		return &existing, nil
	}

	cert := courseModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: "IAPT-" + uuid.NewString(),
		IssuedAt:          time.Now(),
	}
	if err := db.Create(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}
