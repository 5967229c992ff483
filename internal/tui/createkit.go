package tui

import (
	"context"
	"educrate/internal/client"
	"educrate/internal/model"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	kitFieldTopic = iota
	kitFieldSource
	kitFieldStyles
	kitFieldCount
)

// createKitModel 是生成学习包的表单：主题、原始素材和目标风格。
// 风格默认带出测评结果，也可以手动勾选覆盖。
type createKitModel struct {
	topic       textinput.Model
	source      textarea.Model
	styles      map[model.LearningStyle]bool
	styleCursor int
	focus       int
	busy        bool
	errMsg      string
	notice      string
}

func newCreateKitModel() createKitModel {
	topic := textinput.New()
	topic.Placeholder = "想学点什么？"
	topic.CharLimit = 255
	topic.Focus()

	source := textarea.New()
	source.Placeholder = "把要学的文字材料粘贴到这里"
	source.CharLimit = 0

	return createKitModel{
		topic:  topic,
		source: source,
		styles: make(map[model.LearningStyle]bool),
	}
}

func (m createKitModel) withDefaultStyles(styles []model.LearningStyle) createKitModel {
	m.styles = make(map[model.LearningStyle]bool)
	for _, s := range styles {
		m.styles[s] = true
	}
	return m
}

func (m createKitModel) reset(defaults []model.LearningStyle) createKitModel {
	fresh := newCreateKitModel().withDefaultStyles(defaults)
	return fresh
}

func (m createKitModel) selectedStyles() []model.LearningStyle {
	var out []model.LearningStyle
	for _, s := range model.AllLearningStyles {
		if m.styles[s] {
			out = append(out, s)
		}
	}
	return out
}

func (m createKitModel) submit(api client.API, userID string) (createKitModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	topic := strings.TrimSpace(m.topic.Value())
	source := strings.TrimSpace(m.source.Value())
	if topic == "" {
		m.errMsg = "主题不能为空"
		return m, nil
	}
	if source == "" {
		m.errMsg = "学习素材不能为空"
		return m, nil
	}

	req := client.CreateKitRequest{
		UserID:        userID,
		Topic:         topic,
		SourceContent: source,
		TargetStyles:  m.selectedStyles(),
	}

	m.busy = true
	m.errMsg = ""
	m.notice = ""
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		kit, err := api.CreateKit(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return kitCreatedMsg{kit: kit}
	}
}

func (m createKitModel) Update(msg tea.Msg, api client.API, userID string) (createKitModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && !m.busy {
		switch keyMsg.String() {
		case "ctrl+s":
			return m.submit(api, userID)
		case "esc":
			if m.focus == kitFieldSource {
				m = m.focusField(kitFieldStyles)
				return m, nil
			}
			if m.focus == kitFieldStyles {
				m = m.focusField(kitFieldTopic)
				return m, nil
			}
		case "enter":
			if m.focus == kitFieldTopic {
				m = m.focusField(kitFieldSource)
				return m, nil
			}
		case "up":
			if m.focus == kitFieldStyles {
				m = m.focusField(kitFieldSource)
				return m, nil
			}
		case "down":
			if m.focus == kitFieldTopic {
				m = m.focusField(kitFieldSource)
				return m, nil
			}
		case "left":
			if m.focus == kitFieldStyles && m.styleCursor > 0 {
				m.styleCursor--
				return m, nil
			}
		case "right":
			if m.focus == kitFieldStyles && m.styleCursor < len(model.AllLearningStyles)-1 {
				m.styleCursor++
				return m, nil
			}
		case " ":
			if m.focus == kitFieldStyles {
				style := model.AllLearningStyles[m.styleCursor]
				m.styles[style] = !m.styles[style]
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case kitFieldTopic:
		m.topic, cmd = m.topic.Update(msg)
	case kitFieldSource:
		m.source, cmd = m.source.Update(msg)
	}
	return m, cmd
}

func (m createKitModel) focusField(i int) createKitModel {
	m.topic.Blur()
	m.source.Blur()
	m.focus = i
	switch i {
	case kitFieldTopic:
		m.topic.Focus()
	case kitFieldSource:
		m.source.Focus()
	}
	return m
}

func (m createKitModel) View() string {
	var b strings.Builder
	b.WriteString("主题\n" + m.topic.View() + "\n\n")
	b.WriteString("学习素材\n" + m.source.View() + "\n\n")

	b.WriteString("目标风格  ")
	for i, s := range model.AllLearningStyles {
		mark := "[ ]"
		if m.styles[s] {
			mark = "[x]"
		}
		label := mark + " " + string(s)
		if m.focus == kitFieldStyles && i == m.styleCursor {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label + "  ")
	}
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n" + subtitleStyle.Render("生成中..."))
	} else if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	} else if m.notice != "" {
		b.WriteString("\n" + successStyle.Render(m.notice))
	}

	b.WriteString("\n" + helpStyle.Render("enter 下一栏 · esc 离开素材框 · space 勾选风格 · ctrl+s 生成"))
	return b.String()
}
