package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gonewx/cerise/internal/synth"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置内容不合法
var ErrInvalidConfig = errors.New("invalid config")

// ResizeMode 窗口尺寸变化时的缓冲区策略
type ResizeMode string

const (
	// ResizeModeScale 缓冲区保持固定尺寸，由宿主缩放到窗口（默认）
	ResizeModeScale ResizeMode = "scale"
	// ResizeModeTrack 缓冲区跟随窗口逻辑尺寸重新分配
	ResizeModeTrack ResizeMode = "track"
)

// AppConfig 应用配置（窗口 + 场景描述）
type AppConfig struct {
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
}

// WindowConfig 宿主窗口配置
type WindowConfig struct {
	Title            string     `yaml:"title"`            // 窗口标题
	Width            int        `yaml:"width"`            // 缓冲区宽度（像素）
	Height           int        `yaml:"height"`           // 缓冲区高度（像素）
	ResizeDebounceMs int        `yaml:"resizeDebounceMs"` // 窗口尺寸变化的防抖时间（毫秒）
	ResizeMode       ResizeMode `yaml:"resizeMode"`       // scale | track
	TPS              int        `yaml:"tps"`              // 每秒 tick 数
}

// SceneConfig 静态 UI 描述，启动时一次性生成实体
type SceneConfig struct {
	Frames []FrameConfig `yaml:"frames"`
}

// FrameConfig 顶层面板
type FrameConfig struct {
	Title    string        `yaml:"title"`
	Position PointConfig   `yaml:"position"`
	Size     SizeConfig    `yaml:"size"`
	Children []ChildConfig `yaml:"children"`
}

// ChildConfig 面板内的子元素
type ChildConfig struct {
	Size       SizeConfig        `yaml:"size"`
	Offset     OffsetConfig      `yaml:"offset"`     // 相对父面板的偏移
	Oscillator *OscillatorConfig `yaml:"oscillator"` // 可选
}

// OscillatorConfig 振荡器参数
type OscillatorConfig struct {
	Waveform  synth.Waveform `yaml:"waveform"`
	Frequency float64        `yaml:"frequency"`
	Amplitude float64        `yaml:"amplitude"`
}

// PointConfig 坐标
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SizeConfig 宽高
type SizeConfig struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// OffsetConfig 平移偏移
type OffsetConfig struct {
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// DefaultAppConfig 返回默认配置
// 场景为一个标题为 "oscillator" 的面板，内含一个 440Hz 的振荡器控件
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:            DefaultWindowTitle,
			Width:            DefaultBufferWidth,
			Height:           DefaultBufferHeight,
			ResizeDebounceMs: DefaultResizeDebounceMs,
			ResizeMode:       ResizeModeScale,
			TPS:              DefaultTPS,
		},
		Scene: SceneConfig{
			Frames: []FrameConfig{
				{
					Title:    "oscillator",
					Position: PointConfig{X: 50, Y: 50},
					Size:     SizeConfig{W: 260, H: 60},
					Children: []ChildConfig{
						{
							Size:   SizeConfig{W: 250, H: 50},
							Offset: OffsetConfig{DX: 10, DY: 10},
							Oscillator: &OscillatorConfig{
								Waveform:  synth.WaveformSine,
								Frequency: 440,
								Amplitude: 0.5,
							},
						},
					},
				},
			},
		},
	}
}

// LoadAppConfig 从 YAML 文件加载配置
func LoadAppConfig(filePath string) (*AppConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 解析 YAML 配置
// 未出现的窗口字段保留默认值；出现 scene 字段时完整替换默认场景
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()

	raw := struct {
		Window WindowConfig `yaml:"window"`
		Scene  *SceneConfig `yaml:"scene"`
	}{Window: cfg.Window}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.Window = raw.Window
	if raw.Scene != nil {
		cfg.Scene = *raw.Scene
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c *AppConfig) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, w.Width, w.Height)
	}
	if w.ResizeDebounceMs < 0 {
		return fmt.Errorf("%w: window.resizeDebounceMs must be >= 0, got %d", ErrInvalidConfig, w.ResizeDebounceMs)
	}
	if w.ResizeMode != ResizeModeScale && w.ResizeMode != ResizeModeTrack {
		return fmt.Errorf("%w: unknown window.resizeMode %q", ErrInvalidConfig, w.ResizeMode)
	}
	if w.TPS <= 0 {
		return fmt.Errorf("%w: window.tps must be positive, got %d", ErrInvalidConfig, w.TPS)
	}

	for i, f := range c.Scene.Frames {
		if f.Size.W < 0 || f.Size.H < 0 {
			return fmt.Errorf("%w: frames[%d] (%s) has negative size %dx%d", ErrInvalidConfig, i, f.Title, f.Size.W, f.Size.H)
		}
		for j, child := range f.Children {
			if child.Size.W < 0 || child.Size.H < 0 {
				return fmt.Errorf("%w: frames[%d].children[%d] has negative size", ErrInvalidConfig, i, j)
			}
			if child.Oscillator == nil {
				continue
			}
			osc := synth.Oscillator{
				Waveform:  child.Oscillator.Waveform,
				Frequency: child.Oscillator.Frequency,
				Amplitude: child.Oscillator.Amplitude,
			}
			if err := osc.Validate(); err != nil {
				return fmt.Errorf("%w: frames[%d].children[%d].oscillator: %w", ErrInvalidConfig, i, j, err)
			}
		}
	}
	return nil
}

// ResizeDebounceTicks 将防抖毫秒数换算为 tick 数（向上取整）
func (w WindowConfig) ResizeDebounceTicks() int {
	if w.ResizeDebounceMs <= 0 || w.TPS <= 0 {
		return 0
	}
	return (w.ResizeDebounceMs*w.TPS + 999) / 1000
}
