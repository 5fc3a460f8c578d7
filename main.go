package main

import (
	"flag"
	"log"

	"github.com/gonewx/cerise/pkg/app"
	"github.com/gonewx/cerise/pkg/config"
	"github.com/gonewx/cerise/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "启用详细日志输出")
	configPath = flag.String("config", "", "配置文件路径（为空时使用内置配置）")
)

func main() {
	flag.Parse()

	l, err := logger.New(*verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = l.Sync() }()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		l.Fatal("config load failed", zap.Error(err))
	}

	a, err := app.NewApp(cfg, l)
	if err != nil {
		l.Fatal("app init failed", zap.Error(err))
	}
	a.ApplyWindowSettings()

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(a); err != nil {
		l.Fatal("game loop exited", zap.Error(err))
	}
}

// loadConfig 加载配置文件，path 为空时使用内置默认配置
func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		return config.ParseAppConfig(defaultConfig)
	}
	return config.LoadAppConfig(path)
}
