package tui

import (
	"educrate/internal/client"
	"educrate/internal/model"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 没选状态之前 enter 不发请求
func TestStudyStartRequiresMood(t *testing.T) {
	api := newFakeAPI()
	m := newStudyModel()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}, api, "u-1")

	assert.Nil(t, cmd)
	assert.Equal(t, "先选一个当前状态", m.errMsg)
	assert.Zero(t, api.calls["StartStudySession"])
}

func TestStudyStartSendsForm(t *testing.T) {
	api := newFakeAPI()
	var captured client.StartSessionRequest
	api.startSessionFn = func(userID string, req client.StartSessionRequest) (*client.StartSessionResult, error) {
		assert.Equal(t, "u-1", userID)
		captured = req
		return &client.StartSessionResult{
			SessionID: "s-1",
			Suggestions: &model.StudySuggestion{
				StudyDuration:     30,
				BreakIntervals:    5,
				MotivationMessage: "加油",
			},
		}, nil
	}

	m := newStudyModel()
	// 选中第一个状态 focused
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}, api, "u-1")
	// 时间调到 45 分钟
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}, api, "u-1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}, api, "u-1")
	// 精力 5 → 7
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}, api, "u-1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}, api, "u-1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}, api, "u-1")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}, api, "u-1")
	require.NotNil(t, cmd)

	msg := cmd()
	started, ok := msg.(studyStartedMsg)
	require.True(t, ok)

	assert.Equal(t, model.MoodFocused, captured.Mood)
	assert.Equal(t, 45, captured.AvailableTime)
	assert.Equal(t, 7, captured.EnergyLevel)
	assert.Equal(t, 5, captured.FocusLevel)

	m, _ = m.Update(started, api, "u-1")
	assert.Equal(t, "s-1", m.sessionID)
	assert.Contains(t, m.View(), "加油")
}

func TestStudySliderBounds(t *testing.T) {
	api := newFakeAPI()
	m := newStudyModel()
	m.focus = studyFieldEnergy

	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}, api, "u-1")
	}
	assert.Equal(t, 10, m.energy)

	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft}, api, "u-1")
	}
	assert.Equal(t, 1, m.energy)
}

// 结束会话后本地状态全部丢弃
func TestStudyEndDiscardsSession(t *testing.T) {
	api := newFakeAPI()
	api.endSessionFn = func(sessionID string) error {
		assert.Equal(t, "s-1", sessionID)
		return nil
	}

	m := newStudyModel()
	m.result = &client.StartSessionResult{SessionID: "s-1", Suggestions: &model.StudySuggestion{}}
	m.sessionID = "s-1"

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, api, "u-1")
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd(), api, "u-1")

	assert.Nil(t, m.result)
	assert.Empty(t, m.sessionID)
	assert.Equal(t, -1, m.moodIdx)
	assert.Equal(t, 1, api.calls["EndStudySession"])
}
