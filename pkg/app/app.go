// Package app 提供宿主应用包装器
//
// App 实现 ebiten.Game 接口，负责：
//   - 持有场景（World）与像素缓冲区，渲染时把缓冲区借给 RenderSystem
//   - 每个 tick 调用 UpdateSystem，随后由 Ebitengine 请求下一次重绘
//   - 窗口尺寸变化经过 ResizeDebouncer 合并后再处理
//
// Ebitengine 在同一个 goroutine 中调用 Update/Draw/Layout，App 内部不加锁。
package app

import (
	"fmt"

	"github.com/gonewx/cerise/pkg/config"
	"github.com/gonewx/cerise/pkg/logger"
	"github.com/gonewx/cerise/pkg/scene"
	"github.com/gonewx/cerise/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	window       config.WindowConfig
	world        *scene.World
	renderSystem *systems.RenderSystem
	updateSystem *systems.UpdateSystem
	debouncer    *ResizeDebouncer

	buffer []byte // RGBA 像素缓冲区，宿主独占
	width  int
	height int

	outsideWidth  int // 最近一次 Layout 收到的窗口尺寸
	outsideHeight int

	renderErr error // Draw 中出现的错误，由下一次 Update 返回以终止主循环
	logger    *zap.Logger
}

// NewApp 创建并初始化应用
//
// 参数：
//   - cfg: 应用配置（窗口 + 场景描述），为 nil 时使用默认配置
//   - l: 日志器，可为 nil
func NewApp(cfg *config.AppConfig, l *zap.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultAppConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world := scene.NewWorld(l)
	if err := world.Build(&cfg.Scene); err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	a := &App{
		window:       cfg.Window,
		world:        world,
		renderSystem: systems.NewRenderSystem(world, l),
		updateSystem: systems.NewUpdateSystem(world),
		debouncer:    NewResizeDebouncer(cfg.Window.ResizeDebounceTicks()),
		logger:       logger.Named(l, "App"),
	}
	a.allocate(cfg.Window.Width, cfg.Window.Height)

	a.logger.Info("app initialized",
		zap.Int("width", a.width),
		zap.Int("height", a.height),
		zap.Int("entities", world.Entities.Count()),
		zap.String("resizeMode", string(cfg.Window.ResizeMode)))
	return a, nil
}

// ApplyWindowSettings 将窗口配置应用到 Ebitengine
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowTitle(a.window.Title)
	ebiten.SetWindowSize(a.window.Width, a.window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.window.TPS)
}

// Update 更新逻辑
// 每个 tick 调用一次：先处理已合并的尺寸变化，再执行更新系统
func (a *App) Update() error {
	if a.renderErr != nil {
		return a.renderErr
	}

	if w, h, ok := a.debouncer.Tick(); ok {
		a.Resize(w, h)
	}

	a.updateSystem.Update(1.0 / float64(a.window.TPS))
	return nil
}

// Draw 渲染场景并上传到屏幕
func (a *App) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Dx() != a.width || b.Dy() != a.height {
		// 缓冲区刚在本帧的 Update 中重新分配，下一帧 Layout 会给出匹配的尺寸
		a.logger.Debug("screen size mismatch, skipping frame",
			zap.Int("screenWidth", b.Dx()), zap.Int("screenHeight", b.Dy()),
			zap.Int("bufferWidth", a.width), zap.Int("bufferHeight", a.height))
		return
	}

	if !a.renderFrame() {
		return
	}
	screen.WritePixels(a.buffer)
}

// Layout 返回逻辑屏幕尺寸（即像素缓冲区尺寸）
// 窗口尺寸变化时通知防抖器，由 Update 统一处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.outsideWidth || outsideHeight != a.outsideHeight {
		a.outsideWidth = outsideWidth
		a.outsideHeight = outsideHeight
		a.debouncer.Notify(outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

// Resize 处理合并后的窗口尺寸变化
//
// scale 模式下缓冲区尺寸不变，由 Ebitengine 缩放到窗口；
// track 模式下缓冲区按新尺寸重新分配。
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		a.logger.Debug("ignoring empty window size", zap.Int("width", width), zap.Int("height", height))
		return
	}

	switch a.window.ResizeMode {
	case config.ResizeModeTrack:
		if width == a.width && height == a.height {
			return
		}
		a.allocate(width, height)
		a.logger.Info("buffer resized", zap.Int("width", width), zap.Int("height", height))
	default:
		a.logger.Debug("surface resized", zap.Int("width", width), zap.Int("height", height))
	}
}

// World 返回场景
func (a *App) World() *scene.World {
	return a.world
}

// Buffer 返回像素缓冲区及其尺寸
func (a *App) Buffer() ([]byte, int, int) {
	return a.buffer, a.width, a.height
}

func (a *App) renderFrame() bool {
	if err := a.renderSystem.Render(a.buffer, a.width, a.height); err != nil {
		a.logger.Error("render failed", zap.Error(err))
		a.renderErr = fmt.Errorf("render: %w", err)
		return false
	}
	return true
}

func (a *App) allocate(width, height int) {
	a.width = width
	a.height = height
	a.buffer = make([]byte, width*height*config.BytesPerPixel)
}
