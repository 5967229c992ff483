package service

import (
	"educrate/internal/model"
	"educrate/internal/repository"
	"educrate/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominantStylesAboveThreshold(t *testing.T) {
	styles := DominantStyles(map[model.LearningStyle]int{
		model.Visual:      10,
		model.Auditory:    4,
		model.Textual:     8,
		model.Kinesthetic: 4,
	})

	assert.Equal(t, []model.LearningStyle{model.Visual, model.Textual}, styles)
}

func TestDominantStylesFallsBackToMax(t *testing.T) {
	styles := DominantStyles(map[model.LearningStyle]int{
		model.Visual:      4,
		model.Auditory:    6,
		model.Textual:     4,
		model.Kinesthetic: 4,
	})

	assert.Equal(t, []model.LearningStyle{model.Auditory}, styles)
}

func TestSubmitAssessmentUpdatesUserStyles(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := NewAssessmentService(repository.NewAssessmentRepository(db), userRepo)
	user := createTestUser(t, db, "vis@example.com")

	result, err := svc.SubmitAssessment(user.ID, AssessmentSubmissionRequest{
		VisualScore:      10,
		AuditoryScore:    4,
		TextualScore:     4,
		KinestheticScore: 4,
		Answers:          map[string]interface{}{"1": "visual"},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.LearningStyle{model.Visual}, result.DominantStyles)
	assert.Equal(t, 10, result.Scores[model.Visual])

	updated, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.LearningStyle{model.Visual}, updated.LearningStyles)
}

func TestSubmitAssessmentPersistsSubmission(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAssessmentRepository(db)
	svc := NewAssessmentService(repo, repository.NewUserRepository(db))
	user := createTestUser(t, db, "sub@example.com")

	_, err := svc.SubmitAssessment(user.ID, AssessmentSubmissionRequest{
		VisualScore:      4,
		AuditoryScore:    8,
		TextualScore:     4,
		KinestheticScore: 4,
	})
	require.NoError(t, err)

	sub, err := repo.LatestByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, sub.AuditoryScore)
	assert.Equal(t, user.ID, sub.UserID)
}

func TestSubmitAssessmentUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssessmentService(repository.NewAssessmentRepository(db), repository.NewUserRepository(db))

	_, err := svc.SubmitAssessment("no-such-user", AssessmentSubmissionRequest{})

	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestListQuestionsReturnsSeededQuestionnaire(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssessmentService(repository.NewAssessmentRepository(db), repository.NewUserRepository(db))

	qs, err := svc.ListQuestions()
	require.NoError(t, err)

	require.Len(t, qs, 5)
	for i, q := range qs {
		assert.Equal(t, i+1, q.Order)
		assert.Len(t, q.Options, 4)
	}
}
