// 手动重建内容种子数据脚本
//
// 建表和种子数据在主应用启动时自动完成。此脚本仅用于手动触发，
// 例如清库后重新灌入测评问卷和激励短句。
//
// 用法: go run scripts/reseed.go

package main

import (
	"educrate/internal/config"
	"educrate/pkg/database"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("迁移失败: %v", err)
	}

	log.Println("种子数据重建完成")
}
