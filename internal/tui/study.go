package tui

import (
	"context"
	"educrate/internal/client"
	"educrate/internal/model"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	studyFieldMood = iota
	studyFieldTime
	studyFieldEnergy
	studyFieldFocus
	studyFieldCount
)

var timeOptions = []int{15, 30, 45, 60, 90, 120}

var moodLabels = map[model.MoodType]string{
	model.MoodFocused:   "专注",
	model.MoodRelaxed:   "放松",
	model.MoodEnergetic: "精力充沛",
	model.MoodStressed:  "压力大",
	model.MoodCurious:   "好奇",
}

// studyModel 先填状态表单，开始后展示建议，结束会话后回到表单
type studyModel struct {
	focus     int
	moodIdx   int // -1 表示还没选
	timeIdx   int
	energy    int
	focusLvl  int
	busy      bool
	sessionID string
	result    *client.StartSessionResult
	errMsg    string
}

func newStudyModel() studyModel {
	return studyModel{
		moodIdx:  -1,
		timeIdx:  1, // 默认 30 分钟
		energy:   5,
		focusLvl: 5,
	}
}

func (m studyModel) start(api client.API, userID string) (studyModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if m.moodIdx < 0 {
		m.errMsg = "先选一个当前状态"
		return m, nil
	}

	req := client.StartSessionRequest{
		Mood:          model.AllMoods[m.moodIdx],
		AvailableTime: timeOptions[m.timeIdx],
		EnergyLevel:   m.energy,
		FocusLevel:    m.focusLvl,
	}

	m.busy = true
	m.errMsg = ""
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := api.StartStudySession(ctx, userID, req)
		if err != nil {
			return errMsg{err: err}
		}
		return studyStartedMsg{result: result}
	}
}

func (m studyModel) end(api client.API) (studyModel, tea.Cmd) {
	if m.busy || m.sessionID == "" {
		return m, nil
	}
	m.busy = true
	sessionID := m.sessionID
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := api.EndStudySession(ctx, sessionID); err != nil {
			return errMsg{err: err}
		}
		return studyEndedMsg{}
	}
}

func (m studyModel) Update(msg tea.Msg, api client.API, userID string) (studyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case studyStartedMsg:
		m.busy = false
		m.result = msg.result
		m.sessionID = msg.result.SessionID
		return m, nil

	case studyEndedMsg:
		// 会话结束后本地状态全部丢弃，回到表单
		fresh := newStudyModel()
		return fresh, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.result != nil {
			if msg.String() == "e" {
				return m.end(api)
			}
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.focus > 0 {
				m.focus--
			}
		case "down", "j":
			if m.focus < studyFieldCount-1 {
				m.focus++
			}
		case "left", "h":
			m = m.adjust(-1)
		case "right", "l":
			m = m.adjust(1)
		case "enter":
			return m.start(api, userID)
		}
	}
	return m, nil
}

func (m studyModel) adjust(delta int) studyModel {
	switch m.focus {
	case studyFieldMood:
		if m.moodIdx < 0 {
			m.moodIdx = 0
			return m
		}
		next := m.moodIdx + delta
		if next >= 0 && next < len(model.AllMoods) {
			m.moodIdx = next
		}
	case studyFieldTime:
		next := m.timeIdx + delta
		if next >= 0 && next < len(timeOptions) {
			m.timeIdx = next
		}
	case studyFieldEnergy:
		next := m.energy + delta
		if next >= 1 && next <= 10 {
			m.energy = next
		}
	case studyFieldFocus:
		next := m.focusLvl + delta
		if next >= 1 && next <= 10 {
			m.focusLvl = next
		}
	}
	return m
}

func (m studyModel) View() string {
	if m.result != nil {
		return m.suggestionView()
	}

	var b strings.Builder

	mood := "未选择"
	if m.moodIdx >= 0 {
		mood = moodLabels[model.AllMoods[m.moodIdx]]
	}
	rows := []struct {
		label string
		value string
	}{
		{"当前状态", mood},
		{"可用时间", fmt.Sprintf("%d 分钟", timeOptions[m.timeIdx])},
		{"精力水平", slider(m.energy)},
		{"专注水平", slider(m.focusLvl)},
	}
	for i, row := range rows {
		line := fmt.Sprintf("%s  %s", row.label, row.value)
		if i == m.focus {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.busy {
		b.WriteString("\n" + subtitleStyle.Render("生成建议中..."))
	} else if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ 切换 · ←/→ 调整 · enter 开始"))
	return b.String()
}

func slider(v int) string {
	return strings.Repeat("█", v) + strings.Repeat("░", 10-v) + fmt.Sprintf(" %d/10", v)
}

func (m studyModel) suggestionView() string {
	s := m.result.Suggestions
	var b strings.Builder
	b.WriteString(titleStyle.Render("学习建议"))
	b.WriteString("\n")
	if s != nil {
		var types []string
		for _, t := range s.RecommendedContentTypes {
			types = append(types, string(t))
		}
		b.WriteString(fmt.Sprintf("建议学习 %d 分钟，每 %d 分钟休息一次\n", s.StudyDuration, s.BreakIntervals))
		b.WriteString("难度: " + s.DifficultyAdjustment + "\n")
		b.WriteString("推荐内容: " + strings.Join(types, ", ") + "\n\n")
		b.WriteString(successStyle.Render(s.MotivationMessage))
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString("\n" + subtitleStyle.Render("结束中..."))
	}
	b.WriteString(helpStyle.Render("e 结束会话"))
	return boxStyle.Render(b.String())
}
