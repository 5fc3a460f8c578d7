package components

import "github.com/gonewx/cerise/internal/synth"

// OscillatorComponent 附加在 UI 实体上的压控振荡器
// 嵌入 synth.Oscillator，可直接调用 GenerateSamples
type OscillatorComponent struct {
	synth.Oscillator
}
