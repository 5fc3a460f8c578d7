package config

import "image/color"

// 渲染与窗口常量

// 固定配色：不支持调色板或按实体设置样式
var (
	// BackgroundColor 背景色
	BackgroundColor = color.RGBA{R: 0x15, G: 0x1e, B: 0x24, A: 0xff}
	// BorderColor 面板边框色
	BorderColor = color.RGBA{R: 0xe3, G: 0x7b, B: 0x8f, A: 0xff}
)

const (
	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "cerise"

	// DefaultBufferWidth 默认像素缓冲区宽度
	DefaultBufferWidth = 640

	// DefaultBufferHeight 默认像素缓冲区高度
	DefaultBufferHeight = 480

	// DefaultResizeDebounceMs 窗口尺寸变化的默认防抖时间
	DefaultResizeDebounceMs = 100

	// DefaultTPS 默认每秒 tick 数（与 Ebitengine 默认值一致）
	DefaultTPS = 60

	// BytesPerPixel RGBA 每像素字节数
	BytesPerPixel = 4
)
