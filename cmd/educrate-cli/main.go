package main

import (
	"educrate/internal/client"
	"educrate/internal/tui"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8001", "后端 API 地址")
	sessionPath := flag.String("session", "", "会话文件路径，默认放在用户配置目录")
	flag.Parse()

	path := *sessionPath
	if path == "" {
		var err error
		path, err = client.DefaultSessionPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法确定会话文件位置: %v\n", err)
			os.Exit(1)
		}
	}

	api := client.New(*apiURL)
	store := client.NewSessionStore(path)

	p := tea.NewProgram(tui.NewModel(api, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
