package tui

import "errors"

// View 标识顶层界面，welcome → assessment → dashboard 构成主流程
type View int

const (
	ViewWelcome View = iota
	ViewAssessment
	ViewDashboard
)

func (v View) String() string {
	switch v {
	case ViewWelcome:
		return "welcome"
	case ViewAssessment:
		return "assessment"
	case ViewDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

var ErrInvalidTransition = errors.New("invalid view transition")

// allowedTransitions 枚举合法跳转：注册后进测评，测评完成进主面板，
// 退出登录回欢迎页，主面板可以回测评重新测一次
var allowedTransitions = map[View][]View{
	ViewWelcome:    {ViewAssessment, ViewDashboard},
	ViewAssessment: {ViewDashboard, ViewWelcome},
	ViewDashboard:  {ViewAssessment, ViewWelcome},
}

// Transition 校验从 from 到 to 的跳转。assessment 和 dashboard
// 都要求已登录，欢迎页任何时候都能回去。
func Transition(from, to View, loggedIn bool) (View, error) {
	if from == to {
		return from, nil
	}
	if to != ViewWelcome && !loggedIn {
		return from, ErrInvalidTransition
	}
	for _, v := range allowedTransitions[from] {
		if v == to {
			return to, nil
		}
	}
	return from, ErrInvalidTransition
}
