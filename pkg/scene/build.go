package scene

import (
	"fmt"

	"github.com/gonewx/cerise/internal/synth"
	"github.com/gonewx/cerise/pkg/components"
	"github.com/gonewx/cerise/pkg/config"
	"go.uber.org/zap"
)

// Build 根据静态场景描述生成实体
//
// 每个面板生成一个 Frame + Position + Size 实体；
// 每个子元素生成一个 Size + Parent（可选 Oscillator）实体，指向所属面板。
func (w *World) Build(cfg *config.SceneConfig) error {
	if cfg == nil {
		return nil
	}

	for i, f := range cfg.Frames {
		frameID, err := w.Spawn(
			components.FrameComponent{Title: f.Title},
			components.Position{X: f.Position.X, Y: f.Position.Y},
			components.Size{W: f.Size.W, H: f.Size.H},
		)
		if err != nil {
			return fmt.Errorf("failed to spawn frame %d (%s): %w", i, f.Title, err)
		}
		w.logger.Info("frame spawned",
			zap.Uint64("id", uint64(frameID)),
			zap.String("title", f.Title),
			zap.Int("x", f.Position.X), zap.Int("y", f.Position.Y),
			zap.Int("w", f.Size.W), zap.Int("h", f.Size.H))

		for j, child := range f.Children {
			cs := []any{
				components.Size{W: child.Size.W, H: child.Size.H},
				components.ParentComponent{
					Parent:    frameID,
					Transform: components.Transform{DX: child.Offset.DX, DY: child.Offset.DY},
				},
			}
			if child.Oscillator != nil {
				cs = append(cs, components.OscillatorComponent{Oscillator: synth.Oscillator{
					Waveform:  child.Oscillator.Waveform,
					Frequency: child.Oscillator.Frequency,
					Amplitude: child.Oscillator.Amplitude,
				}})
			}

			childID, err := w.Spawn(cs...)
			if err != nil {
				return fmt.Errorf("failed to spawn child %d of frame %s: %w", j, f.Title, err)
			}
			w.logger.Info("child spawned",
				zap.Uint64("id", uint64(childID)),
				zap.Uint64("parent", uint64(frameID)),
				zap.Bool("oscillator", child.Oscillator != nil))
		}
	}
	return nil
}
