package tui

import (
	"context"
	"educrate/internal/client"
	"educrate/internal/model"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// assessmentModel 一次只展示一道题，答完全部才能提交。
// 提交失败停留在本页，不会放行进主面板。
type assessmentModel struct {
	api       client.API
	userID    string
	questions []model.AssessmentQuestion
	answers   map[int]model.LearningStyle
	current   int
	cursor    int
	loading   bool
	busy      bool
	errMsg    string
}

func newAssessmentModel(api client.API) assessmentModel {
	return assessmentModel{
		api:     api,
		answers: make(map[int]model.LearningStyle),
		loading: true,
	}
}

func (m assessmentModel) loadQuestions() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		qs, err := api.AssessmentQuestions(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return questionsLoadedMsg{questions: qs}
	}
}

// scores 统计每种风格被选中的次数：选中 n 次计 2n 分，一次没选计 4 分基础分
func (m assessmentModel) scores() map[model.LearningStyle]int {
	counts := make(map[model.LearningStyle]int)
	for _, style := range m.answers {
		counts[style]++
	}
	result := make(map[model.LearningStyle]int)
	for _, style := range model.AllLearningStyles {
		if counts[style] == 0 {
			result[style] = 4
		} else {
			result[style] = 2 * counts[style]
		}
	}
	return result
}

func (m assessmentModel) allAnswered() bool {
	return len(m.questions) > 0 && len(m.answers) == len(m.questions)
}

func (m assessmentModel) submit(userID string) (assessmentModel, tea.Cmd) {
	if m.busy || !m.allAnswered() {
		return m, nil
	}

	scores := m.scores()
	answers := make(map[string]interface{}, len(m.answers))
	for idx, style := range m.answers {
		answers[fmt.Sprintf("%d", m.questions[idx].ID)] = string(style)
	}

	req := client.SubmitAssessmentRequest{
		VisualScore:      scores[model.Visual],
		AuditoryScore:    scores[model.Auditory],
		TextualScore:     scores[model.Textual],
		KinestheticScore: scores[model.Kinesthetic],
		Answers:          answers,
	}

	m.busy = true
	m.errMsg = ""
	api := m.api
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := api.SubmitAssessment(ctx, userID, req)
		if err != nil {
			return errMsg{err: err}
		}
		return assessmentSubmittedMsg{result: result}
	}
}

func (m assessmentModel) withUser(userID string) assessmentModel {
	m.userID = userID
	return m
}

func (m assessmentModel) Update(msg tea.Msg) (assessmentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		m.questions = msg.questions
		m.loading = false
		m.current = 0
		m.cursor = 0
		return m, nil

	case errMsg:
		m.loading = false
		m.busy = false
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.loading || m.busy || len(m.questions) == 0 {
			return m, nil
		}
		q := m.questions[m.current]
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case "left", "h":
			if m.current > 0 {
				m.current--
				m.cursor = m.optionIndex(m.current)
			}
		case "enter":
			m.answers[m.current] = q.Options[m.cursor].Value
			if m.current < len(m.questions)-1 {
				m.current++
				m.cursor = m.optionIndex(m.current)
				return m, nil
			}
			return m.submit(m.userID)
		}
	}
	return m, nil
}

// optionIndex 回看已答题目时把光标放回之前的选择上
func (m assessmentModel) optionIndex(question int) int {
	style, ok := m.answers[question]
	if !ok {
		return 0
	}
	for i, opt := range m.questions[question].Options {
		if opt.Value == style {
			return i
		}
	}
	return 0
}

func (m assessmentModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("学习风格测评"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(subtitleStyle.Render("加载问卷中..."))
	case len(m.questions) == 0:
		b.WriteString(errorStyle.Render("问卷为空"))
	default:
		q := m.questions[m.current]
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("第 %d / %d 题", m.current+1, len(m.questions))))
		b.WriteString("\n\n" + q.Question + "\n\n")
		for i, opt := range q.Options {
			line := "  " + opt.Text
			if i == m.cursor {
				line = selectedStyle.Render("> " + opt.Text)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.busy {
		b.WriteString("\n" + subtitleStyle.Render("提交中..."))
	} else if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("↑/↓ 选择 · enter 确认 · ← 上一题"))
	return boxStyle.Render(b.String())
}
