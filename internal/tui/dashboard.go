package tui

import (
	"context"
	"educrate/internal/client"
	"educrate/internal/model"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardTab int

const (
	tabMyKits dashboardTab = iota
	tabCreateKit
	tabStudy
	tabCount
)

var tabTitles = []string{"我的学习包", "生成学习包", "学习会话"}

// dashboardModel 是登录后的主面板，tab 在三个子页面之间切换
type dashboardModel struct {
	api    client.API
	user   *model.User
	tab    dashboardTab
	myKits myKitsModel
	create createKitModel
	study  studyModel
	errMsg string
}

func newDashboardModel(api client.API) dashboardModel {
	return dashboardModel{
		api:    api,
		myKits: newMyKitsModel(),
		create: newCreateKitModel(),
		study:  newStudyModel(),
	}
}

func (m dashboardModel) withUser(user *model.User) dashboardModel {
	m.user = user
	m.create = m.create.withDefaultStyles(user.LearningStyles)
	return m
}

// reloadKits 进入面板和生成新学习包之后都会触发
func (m dashboardModel) reloadKits() tea.Cmd {
	if m.user == nil {
		return nil
	}
	api := m.api
	userID := m.user.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		kits, err := api.ListKits(ctx, userID)
		if err != nil {
			return errMsg{err: err}
		}
		return kitsLoadedMsg{kits: kits}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case kitsLoadedMsg:
		m.myKits = m.myKits.withKits(msg.kits)
		return m, nil

	case kitCreatedMsg:
		m.create = m.create.reset(m.defaultStyles())
		m.create.notice = "学习包已生成: " + msg.kit.Topic
		m.tab = tabMyKits
		return m, m.reloadKits()

	case errMsg:
		m.errMsg = msg.err.Error()
		m.create.busy = false
		m.study.busy = false
		m.myKits.busy = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.tab = (m.tab + 1) % tabCount
			m.errMsg = ""
			return m, nil
		case "shift+tab":
			m.tab = (m.tab - 1 + tabCount) % tabCount
			m.errMsg = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.tab {
	case tabMyKits:
		m.myKits, cmd = m.myKits.Update(msg, m.api, m.userID())
		if m.myKits.wantReload {
			m.myKits.wantReload = false
			cmd = m.reloadKits()
		}
	case tabCreateKit:
		m.create, cmd = m.create.Update(msg, m.api, m.userID())
	case tabStudy:
		m.study, cmd = m.study.Update(msg, m.api, m.userID())
	}
	return m, cmd
}

func (m dashboardModel) userID() string {
	if m.user == nil {
		return ""
	}
	return m.user.ID
}

func (m dashboardModel) defaultStyles() []model.LearningStyle {
	if m.user == nil {
		return nil
	}
	return m.user.LearningStyles
}

func (m dashboardModel) View() string {
	var tabs []string
	for i, title := range tabTitles {
		if dashboardTab(i) == m.tab {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, tabStyle.Render(title))
		}
	}

	var b strings.Builder
	if m.user != nil {
		b.WriteString(titleStyle.Render("EduCrate · " + m.user.Name))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.tab {
	case tabMyKits:
		b.WriteString(m.myKits.View())
	case tabCreateKit:
		b.WriteString(m.create.View())
	case tabStudy:
		b.WriteString(m.study.View())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString(helpStyle.Render("tab 切换页面 · ctrl+l 退出登录 · ctrl+c 退出"))
	return b.String()
}
