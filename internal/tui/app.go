package tui

import (
	"context"
	"educrate/internal/client"
	"educrate/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Model 是顶层 TUI 模型，持有当前视图并把消息分发给子模型
type Model struct {
	api   client.API
	store *client.SessionStore

	view View
	user *model.User

	welcome    welcomeModel
	assessment assessmentModel
	dashboard  dashboardModel

	width  int
	height int
	err    error
}

func NewModel(api client.API, store *client.SessionStore) Model {
	return Model{
		api:        api,
		store:      store,
		view:       ViewWelcome,
		welcome:    newWelcomeModel(api),
		assessment: newAssessmentModel(api),
		dashboard:  newDashboardModel(api),
	}
}

// Init 尝试恢复本地会话：拉用户成功直接进主面板，失败留在欢迎页
func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	sess := m.store.Load()
	if sess == nil {
		return nil
	}
	api := m.api
	userID := sess.UserID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := api.GetUser(ctx, userID)
		if err != nil {
			return sessionRestoreFailedMsg{}
		}
		return userRestoredMsg{user: user}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			if m.view == ViewDashboard {
				return m.logout()
			}
		}

	case userRestoredMsg:
		m.user = msg.user
		if next, err := Transition(m.view, ViewDashboard, true); err == nil {
			m.view = next
			m.dashboard = m.dashboard.withUser(m.user)
			return m, m.dashboard.reloadKits()
		}
		return m, nil

	case sessionRestoreFailedMsg:
		if m.store != nil {
			m.store.Clear()
		}
		return m, nil

	case userRegisteredMsg:
		m.user = msg.user
		if m.store != nil {
			m.store.Save(&client.Session{
				UserID: msg.user.ID,
				Email:  msg.user.Email,
				Name:   msg.user.Name,
			})
		}
		if next, err := Transition(m.view, ViewAssessment, true); err == nil {
			m.view = next
			m.assessment = m.assessment.withUser(msg.user.ID)
			return m, m.assessment.loadQuestions()
		}
		return m, nil

	case assessmentSubmittedMsg:
		if m.user != nil {
			m.user.LearningStyles = msg.result.DominantStyles
		}
		if next, err := Transition(m.view, ViewDashboard, m.user != nil); err == nil {
			m.view = next
			m.dashboard = m.dashboard.withUser(m.user)
			return m, m.dashboard.reloadKits()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case ViewWelcome:
		m.welcome, cmd = m.welcome.Update(msg)
	case ViewAssessment:
		m.assessment, cmd = m.assessment.Update(msg)
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	}
	return m, cmd
}

// logout 清掉本地会话和所有用户态数据后回到欢迎页
func (m Model) logout() (tea.Model, tea.Cmd) {
	if m.store != nil {
		m.store.Clear()
	}
	next, err := Transition(m.view, ViewWelcome, false)
	if err != nil {
		return m, nil
	}
	m.view = next
	m.user = nil
	m.welcome = newWelcomeModel(m.api)
	m.assessment = newAssessmentModel(m.api)
	m.dashboard = newDashboardModel(m.api)
	return m, nil
}

func (m Model) View() string {
	switch m.view {
	case ViewWelcome:
		return m.welcome.View()
	case ViewAssessment:
		return m.assessment.View()
	case ViewDashboard:
		return m.dashboard.View()
	default:
		return ""
	}
}
