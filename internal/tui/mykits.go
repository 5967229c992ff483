package tui

import (
	"context"
	"educrate/internal/client"
	"educrate/internal/model"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const flashcardPreviewCount = 3

// myKitsModel 展示学习包列表，enter 打开详情弹层，
// 详情里可以针对这包的内容提问
type myKitsModel struct {
	kits       []model.LearningKit
	cursor     int
	selected   *model.LearningKit
	loaded     bool
	wantReload bool

	question textinput.Model
	asking   bool
	answer   string
	busy     bool
}

func newMyKitsModel() myKitsModel {
	question := textinput.New()
	question.Placeholder = "针对这个学习包提问..."
	question.CharLimit = 500
	return myKitsModel{question: question}
}

func (m myKitsModel) withKits(kits []model.LearningKit) myKitsModel {
	m.kits = kits
	m.loaded = true
	if m.cursor >= len(kits) {
		m.cursor = 0
	}
	m.selected = nil
	m = m.resetQA()
	return m
}

func (m myKitsModel) resetQA() myKitsModel {
	m.asking = false
	m.answer = ""
	m.busy = false
	m.question.SetValue("")
	m.question.Blur()
	return m
}

func (m myKitsModel) ask(api client.API, userID string) (myKitsModel, tea.Cmd) {
	if m.busy || m.selected == nil {
		return m, nil
	}
	question := strings.TrimSpace(m.question.Value())
	if question == "" {
		return m, nil
	}

	req := client.AskRequest{
		UserID:   userID,
		KitID:    m.selected.ID,
		Question: question,
	}
	m.busy = true
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := api.AskQuestion(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return answerReceivedMsg{result: result}
	}
}

func (m myKitsModel) Update(msg tea.Msg, api client.API, userID string) (myKitsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case answerReceivedMsg:
		m.busy = false
		m.asking = false
		m.answer = msg.result.Answer
		m.question.SetValue("")
		m.question.Blur()
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.selected != nil {
			return m.updateDetail(msg, api, userID)
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.kits)-1 {
				m.cursor++
			}
		case "enter":
			// 列表为空时 enter 不做任何事
			if m.cursor < len(m.kits) {
				kit := m.kits[m.cursor]
				m.selected = &kit
			}
		case "r":
			m.wantReload = true
		}
	}
	return m, nil
}

func (m myKitsModel) updateDetail(msg tea.KeyMsg, api client.API, userID string) (myKitsModel, tea.Cmd) {
	if m.asking {
		switch msg.String() {
		case "enter":
			return m.ask(api, userID)
		case "esc":
			m = m.resetQA()
			return m, nil
		}
		var cmd tea.Cmd
		m.question, cmd = m.question.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "a":
		m.asking = true
		m.answer = ""
		m.question.Focus()
	case "esc", "enter":
		m.selected = nil
		m = m.resetQA()
	}
	return m, nil
}

func (m myKitsModel) View() string {
	if m.selected != nil {
		return m.detailView()
	}

	var b strings.Builder
	switch {
	case !m.loaded:
		b.WriteString(subtitleStyle.Render("加载中..."))
	case len(m.kits) == 0:
		b.WriteString(subtitleStyle.Render("还没有学习包，去「生成学习包」创建第一个吧"))
	default:
		for i, kit := range m.kits {
			line := fmt.Sprintf("%s  (%d 项内容 · %d 分钟)", kit.Topic, len(kit.ContentItems), kit.EstimatedTime)
			if i == m.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("enter 查看详情 · r 刷新"))
	}
	return b.String()
}

func (m myKitsModel) detailView() string {
	kit := m.selected
	var b strings.Builder
	b.WriteString(titleStyle.Render(kit.Topic))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("难度 %s · 预计 %d 分钟", kit.DifficultyLevel, kit.EstimatedTime)))
	b.WriteString("\n\n")

	for _, item := range kit.ContentItems {
		b.WriteString(selectedStyle.Render(string(item.Type)))
		b.WriteString("\n")
		if item.Type == model.ContentFlashcards {
			shown := len(item.Cards)
			if shown > flashcardPreviewCount {
				shown = flashcardPreviewCount
			}
			for _, card := range item.Cards[:shown] {
				b.WriteString("  Q: " + card.Question + "\n")
				b.WriteString("  A: " + card.Answer + "\n")
			}
			if rest := len(item.Cards) - shown; rest > 0 {
				b.WriteString(subtitleStyle.Render(fmt.Sprintf("  还有 %d 张卡片", rest)) + "\n")
			}
		} else if item.Content != "" {
			b.WriteString("  " + item.Content + "\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.busy:
		b.WriteString(subtitleStyle.Render("思考中...") + "\n")
	case m.asking:
		b.WriteString("提问\n" + m.question.View() + "\n")
	case m.answer != "":
		b.WriteString(successStyle.Render(m.answer) + "\n")
	}

	if m.asking {
		b.WriteString(helpStyle.Render("enter 发送 · esc 取消"))
	} else {
		b.WriteString(helpStyle.Render("a 提问 · esc 返回列表"))
	}
	return boxStyle.Render(b.String())
}
