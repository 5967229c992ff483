package tui

import (
	"educrate/internal/client"
	"educrate/internal/model"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedAssessment(api *fakeAPI, n int) assessmentModel {
	m := newAssessmentModel(api).withUser("u-1")
	m, _ = m.Update(questionsLoadedMsg{questions: seedQuestions(n)})
	return m
}

// 五道题全选 visual：visual 10 分，其余各 4 分
func TestAssessmentAllVisualScoring(t *testing.T) {
	api := newFakeAPI()
	var captured client.SubmitAssessmentRequest
	api.submitFn = func(userID string, req client.SubmitAssessmentRequest) (*client.AssessmentResult, error) {
		assert.Equal(t, "u-1", userID)
		captured = req
		return &client.AssessmentResult{DominantStyles: []model.LearningStyle{model.Visual}}, nil
	}

	m := loadedAssessment(api, 5)
	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		// 光标停在第一个选项 visual 上，直接确认
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.NotNil(t, cmd)

	msg := cmd()
	_, ok := msg.(assessmentSubmittedMsg)
	require.True(t, ok)

	assert.Equal(t, 10, captured.VisualScore)
	assert.Equal(t, 4, captured.AuditoryScore)
	assert.Equal(t, 4, captured.TextualScore)
	assert.Equal(t, 4, captured.KinestheticScore)
	assert.Len(t, captured.Answers, 5)
}

func TestAssessmentMixedScoring(t *testing.T) {
	api := newFakeAPI()
	m := loadedAssessment(api, 5)

	// 三道 visual，两道 auditory
	m.answers = map[int]model.LearningStyle{
		0: model.Visual, 1: model.Visual, 2: model.Visual,
		3: model.Auditory, 4: model.Auditory,
	}

	scores := m.scores()
	assert.Equal(t, 6, scores[model.Visual])
	assert.Equal(t, 4, scores[model.Auditory])
	assert.Equal(t, 4, scores[model.Textual])
	assert.Equal(t, 4, scores[model.Kinesthetic])
}

// 没答完最后一题之前 enter 只是翻页，不会触发提交
func TestAssessmentRequiresAllAnswers(t *testing.T) {
	api := newFakeAPI()
	m := loadedAssessment(api, 3)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.current)
	assert.Zero(t, api.calls["SubmitAssessment"])
}

// 提交失败停留在测评页并展示错误
func TestAssessmentSubmitFailureBlocks(t *testing.T) {
	api := newFakeAPI()
	api.submitFn = func(userID string, req client.SubmitAssessmentRequest) (*client.AssessmentResult, error) {
		return nil, errors.New("connection refused")
	}

	m := loadedAssessment(api, 2)
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())

	assert.False(t, m.busy)
	assert.Equal(t, "connection refused", m.errMsg)
}

func TestAssessmentBackNavigationKeepsAnswer(t *testing.T) {
	api := newFakeAPI()
	m := loadedAssessment(api, 3)

	// 第一题选第二个选项 auditory
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.current)

	// 回到第一题时光标停在之前的选择上
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.current)
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, model.Auditory, m.answers[0])
}

func TestAssessmentCursorBounds(t *testing.T) {
	api := newFakeAPI()
	m := loadedAssessment(api, 1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 3, m.cursor)
}
