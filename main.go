// @title EduCrate 后端 API
// @version 1.0
// @description EduCrate 个性化学习平台的后端服务器。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8001
// @BasePath /api

package main

import (
	"educrate/internal/app"
	"educrate/internal/config"
	"educrate/pkg/configwatcher"
	"educrate/pkg/logger"
	"flag"
	"log"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移在 NewApp 里随建库完成，指定 -migrate-only 时到此为止
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(c interface{}) {
		logger.Log.Info("Config file reloaded", zap.Any("config", c))
	})

	application.Run()
}
