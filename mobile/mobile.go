//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
// 移动端没有命令行参数，使用默认配置与默认场景。
//
// 手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.cerise -o build/android/cerise.aar -v ./mobile
//
//	# iOS
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Cerise.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/cerise/pkg/app"
	"github.com/gonewx/cerise/pkg/config"
	"github.com/gonewx/cerise/pkg/logger"
)

func init() {
	l, err := logger.New(true)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}

	// 移动端窗口尺寸由系统决定，缓冲区跟随屏幕
	cfg := config.DefaultAppConfig()
	cfg.Window.ResizeMode = config.ResizeModeTrack

	a, err := app.NewApp(cfg, l)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(a)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
