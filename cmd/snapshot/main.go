// cmd/snapshot/main.go
// 离线渲染工具：不打开窗口，将场景渲染为 PNG，并可导出振荡器采样为 .au 文件
//
// 用法：
//
//	go run ./cmd/snapshot -out scene.png
//	go run ./cmd/snapshot -config data/cerise.yaml -out scene.png -au vco.au -samples 48000
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/gonewx/cerise/internal/audio"
	"github.com/gonewx/cerise/pkg/config"
	"github.com/gonewx/cerise/pkg/ecs"
	"github.com/gonewx/cerise/pkg/logger"
	"github.com/gonewx/cerise/pkg/scene"
	"github.com/gonewx/cerise/pkg/systems"
	"go.uber.org/zap"
)

// options 命令行参数
type options struct {
	configPath string
	outPath    string
	width      int // 0 表示使用配置值
	height     int
	auPath     string // 为空时不导出采样
	samples    int
	sampleRate int
	verify     bool // 写出 .au 后重新解码校验
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "配置文件路径（为空时使用默认场景）")
	flag.StringVar(&opts.outPath, "out", "scene.png", "PNG 输出路径")
	flag.IntVar(&opts.width, "width", 0, "缓冲区宽度（0 表示使用配置值）")
	flag.IntVar(&opts.height, "height", 0, "缓冲区高度（0 表示使用配置值）")
	flag.StringVar(&opts.auPath, "au", "", "振荡器采样输出路径（.au），为空时不导出")
	flag.IntVar(&opts.samples, "samples", 48000, "导出的采样数")
	flag.IntVar(&opts.sampleRate, "rate", 48000, "采样率（Hz）")
	flag.BoolVar(&opts.verify, "verify", true, "导出后重新读取 .au 文件校验")
	verbose := flag.Bool("verbose", false, "显示详细调试信息")
	flag.Parse()

	l, err := logger.New(*verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = l.Sync() }()

	if err := run(l, opts); err != nil {
		l.Fatal("snapshot failed", zap.Error(err))
	}
}

func run(l *zap.Logger, opts options) error {
	l = logger.OrNop(l)

	cfg := config.DefaultAppConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadAppConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	if opts.width > 0 {
		w = opts.width
	}
	if opts.height > 0 {
		h = opts.height
	}

	world := scene.NewWorld(l)
	if err := world.Build(&cfg.Scene); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := systems.NewRenderSystem(world, l).RenderImage(img); err != nil {
		return err
	}
	if err := writePNG(opts.outPath, img); err != nil {
		return err
	}
	l.Info("snapshot written", zap.String("path", opts.outPath), zap.Int("width", w), zap.Int("height", h))

	if opts.auPath == "" {
		return nil
	}
	return exportOscillators(l, world, opts)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}

// auTarget 返回振荡器的输出路径
// 有多个振荡器时在文件名后追加实体ID：vco.au -> vco.<id>.au
func auTarget(path string, id ecs.EntityID, multiple bool) string {
	if !multiple {
		return path
	}
	return fmt.Sprintf("%s.%d.au", strings.TrimSuffix(path, ".au"), id)
}

// exportOscillators 将每个振荡器的采样写入 .au 文件
func exportOscillators(l *zap.Logger, world *scene.World, opts options) error {
	multiple := world.Oscillators.Len() > 1

	for id, osc := range ecs.Query1(world.Entities, world.Oscillators) {
		samples, err := osc.GenerateSamples(opts.samples, opts.sampleRate)
		if err != nil {
			return fmt.Errorf("oscillator %d: %w", id, err)
		}
		stream := audio.NewPCMStream(samples, opts.sampleRate)

		target := auTarget(opts.auPath, id, multiple)
		if err := writeAU(target, stream); err != nil {
			return err
		}
		if opts.verify {
			if err := verifyAU(target, stream); err != nil {
				return err
			}
		}

		l.Info("oscillator exported",
			zap.Uint64("id", uint64(id)),
			zap.Float64("frequency", osc.Frequency),
			zap.Int("samples", len(samples)),
			zap.String("path", target))
	}
	return nil
}

func writeAU(path string, stream *audio.PCMStream) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := audio.EncodeAU(f, stream); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// verifyAU 重新解码写出的文件，检查采样率与数据长度
func verifyAU(path string, want *audio.PCMStream) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	got, err := audio.DecodeAU(f)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	if got.SampleRate() != want.SampleRate() || got.Length() != want.Length() {
		return fmt.Errorf("verify %s: got %d bytes at %d Hz, want %d bytes at %d Hz",
			path, got.Length(), got.SampleRate(), want.Length(), want.SampleRate())
	}
	return nil
}
