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

const (
	fieldName = iota
	fieldEmail
	fieldLanguage
	fieldCount
)

// welcomeModel 是注册表单：姓名、邮箱、语言。姓名和邮箱为空时不发请求。
type welcomeModel struct {
	api    client.API
	inputs []textinput.Model
	focus  int
	busy   bool
	errMsg string
}

func newWelcomeModel(api client.API) welcomeModel {
	inputs := make([]textinput.Model, fieldCount)

	name := textinput.New()
	name.Placeholder = "你的名字"
	name.CharLimit = 100
	name.Focus()
	inputs[fieldName] = name

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 100
	inputs[fieldEmail] = email

	lang := textinput.New()
	lang.Placeholder = "en"
	lang.CharLimit = 10
	inputs[fieldLanguage] = lang

	return welcomeModel{api: api, inputs: inputs}
}

// validate 返回第一条校验错误，通过时返回空串
func (m welcomeModel) validate() string {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	lang := strings.TrimSpace(m.inputs[fieldLanguage].Value())

	if name == "" {
		return "名字不能为空"
	}
	if email == "" {
		return "邮箱不能为空"
	}
	if !strings.Contains(email, "@") {
		return "邮箱格式不正确"
	}
	if lang != "" && !model.LanguageSupported(lang) {
		return fmt.Sprintf("不支持的语言: %s", lang)
	}
	return ""
}

func (m welcomeModel) submit() (welcomeModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if msg := m.validate(); msg != "" {
		m.errMsg = msg
		return m, nil
	}

	req := client.CreateUserRequest{
		Name:              strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:             strings.TrimSpace(m.inputs[fieldEmail].Value()),
		PreferredLanguage: strings.TrimSpace(m.inputs[fieldLanguage].Value()),
	}

	m.busy = true
	m.errMsg = ""
	api := m.api
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := api.CreateUser(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return userRegisteredMsg{user: user}
	}
}

func (m welcomeModel) Update(msg tea.Msg) (welcomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.busy = false
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			if m.focus == fieldCount-1 {
				return m.submit()
			}
			m = m.focusField(m.focus + 1)
			return m, nil
		case "tab", "down":
			m = m.focusField((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m = m.focusField((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m welcomeModel) focusField(i int) welcomeModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("EduCrate"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("注册后开始你的个性化学习"))
	b.WriteString("\n\n")

	labels := []string{"名字", "邮箱", "语言"}
	for i, in := range m.inputs {
		label := labels[i]
		if i == m.focus {
			label = selectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n" + in.View() + "\n\n")
	}

	if m.busy {
		b.WriteString(subtitleStyle.Render("注册中..."))
	} else if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("tab 切换 · enter 提交 · ctrl+c 退出"))
	return boxStyle.Render(b.String())
}
