package tui

import (
	"educrate/internal/client"
	"educrate/internal/model"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDashboard(api *fakeAPI, styles ...model.LearningStyle) dashboardModel {
	return newDashboardModel(api).withUser(testUser("u-1", styles...))
}

func TestDashboardTabCycling(t *testing.T) {
	m := testDashboard(newFakeAPI())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabCreateKit, m.tab)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabStudy, m.tab)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabMyKits, m.tab)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabStudy, m.tab)
}

func TestDashboardKitsLoaded(t *testing.T) {
	m := testDashboard(newFakeAPI())

	m, _ = m.Update(kitsLoadedMsg{kits: sampleKits(2)})

	assert.Len(t, m.myKits.kits, 2)
	assert.True(t, m.myKits.loaded)
}

// 新包生成成功后表单清空、切回列表页并重新拉取
func TestDashboardKitCreatedReloadsAndResets(t *testing.T) {
	api := newFakeAPI()
	api.listKitsFn = func(userID string) ([]model.LearningKit, error) {
		return sampleKits(1), nil
	}
	m := testDashboard(api, model.Visual)
	m.tab = tabCreateKit
	m.create.topic.SetValue("old topic")

	kit := &model.LearningKit{Topic: "new kit"}
	m, cmd := m.Update(kitCreatedMsg{kit: kit})

	assert.Equal(t, tabMyKits, m.tab)
	assert.Empty(t, m.create.topic.Value())
	assert.Contains(t, m.create.notice, "new kit")
	// 默认风格回到测评结果
	assert.True(t, m.create.styles[model.Visual])

	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, api.calls["ListKits"])
}

func TestCreateKitValidationBlocksRequest(t *testing.T) {
	api := newFakeAPI()
	m := newCreateKitModel()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS}, api, "u-1")
	assert.Nil(t, cmd)
	assert.Equal(t, "主题不能为空", m.errMsg)

	m.topic.SetValue("a topic")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS}, api, "u-1")
	assert.Nil(t, cmd)
	assert.Equal(t, "学习素材不能为空", m.errMsg)

	assert.Zero(t, api.calls["CreateKit"])
}

func TestCreateKitSubmitsSelectedStyles(t *testing.T) {
	api := newFakeAPI()
	var captured client.CreateKitRequest
	api.createKitFn = func(req client.CreateKitRequest) (*model.LearningKit, error) {
		captured = req
		return &model.LearningKit{Topic: req.Topic}, nil
	}

	m := newCreateKitModel().withDefaultStyles([]model.LearningStyle{model.Visual})
	m.topic.SetValue("gravity")
	m.source.SetValue("things fall down")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS}, api, "u-1")
	require.NotNil(t, cmd)

	msg := cmd()
	created, ok := msg.(kitCreatedMsg)
	require.True(t, ok)
	assert.Equal(t, "gravity", created.kit.Topic)

	assert.Equal(t, "u-1", captured.UserID)
	assert.Equal(t, "gravity", captured.Topic)
	assert.Equal(t, []model.LearningStyle{model.Visual}, captured.TargetStyles)
}

func TestCreateKitStyleToggle(t *testing.T) {
	api := newFakeAPI()
	m := newCreateKitModel().withDefaultStyles([]model.LearningStyle{model.Visual})
	m = m.focusField(kitFieldStyles)

	// 取消 visual，勾上 auditory
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace}, api, "u-1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}, api, "u-1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace}, api, "u-1")

	assert.Equal(t, []model.LearningStyle{model.Auditory}, m.selectedStyles())
}

func TestDashboardErrorClearsBusyFlags(t *testing.T) {
	m := testDashboard(newFakeAPI())
	m.create.busy = true
	m.study.busy = true

	m, _ = m.Update(errMsg{err: assert.AnError})

	assert.False(t, m.create.busy)
	assert.False(t, m.study.busy)
	assert.Equal(t, assert.AnError.Error(), m.errMsg)
}
