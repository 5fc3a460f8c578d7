// Package synth 提供压控振荡器（VCO）的采样生成
//
// 振荡器是挂在 UI 实体上的音频参数控件，本版本只负责生成采样，不连接任何音频输出设备。
package synth

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
)

var (
	// ErrInvalidCount 采样数量为负
	ErrInvalidCount = errors.New("synth: sample count must be non-negative")
	// ErrInvalidSampleRate 采样率不是正数
	ErrInvalidSampleRate = errors.New("synth: sample rate must be positive")
	// ErrInvalidFrequency 频率不是有限正数
	ErrInvalidFrequency = errors.New("synth: frequency must be a finite positive number")
	// ErrUnknownWaveform 未知波形
	ErrUnknownWaveform = errors.New("synth: unknown waveform")
)

// Waveform 振荡器波形类型
type Waveform int

const (
	// WaveformSine 正弦波（目前唯一支持的波形）
	WaveformSine Waveform = iota
)

// String 返回波形名称
func (w Waveform) String() string {
	switch w {
	case WaveformSine:
		return "sine"
	default:
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
}

// ParseWaveform 将名称解析为波形（不区分大小写）
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return WaveformSine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWaveform, name)
	}
}

// MarshalText 实现 encoding.TextMarshaler，供 YAML 配置使用
func (w Waveform) MarshalText() ([]byte, error) {
	if w != WaveformSine {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWaveform, int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (w *Waveform) UnmarshalText(text []byte) error {
	parsed, err := ParseWaveform(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Oscillator 压控振荡器参数
type Oscillator struct {
	Waveform  Waveform
	Frequency float64 // 频率（Hz），必须为正
	Amplitude float64 // 振幅，名义范围 [0, 1]，类型本身不做限制
}

// Validate 检查振荡器参数
func (o *Oscillator) Validate() error {
	if o.Waveform != WaveformSine {
		return fmt.Errorf("%w: %d", ErrUnknownWaveform, int(o.Waveform))
	}
	if !(o.Frequency > 0) || math.IsInf(o.Frequency, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFrequency, o.Frequency)
	}
	return nil
}

// SampleAt 计算第 i 个采样
//
// 相位直接由索引计算而非逐步累加：phase = frac(i * frequency / sampleRate)，
// 先取小数部分再乘 2π，避免 i 很大时 sin 参数无限增长。
// 因此任意子区间重新生成的结果与整体生成逐位一致。
//
// 调用方需保证 sampleRate > 0（参见 GenerateSamples 的校验）。
func (o *Oscillator) SampleAt(i, sampleRate int) float64 {
	_, phase := math.Modf(float64(i) * (o.Frequency / float64(sampleRate)))
	return math.Sin(phase*2*math.Pi) * o.Amplitude
}

// GenerateSamples 生成 count 个采样
//
// 参数：
//   - count: 采样数量，必须非负
//   - sampleRate: 采样率（Hz），必须为正
//
// 返回：
//   - []float64: 长度恰为 count 的采样序列，每个值位于 [-|Amplitude|, |Amplitude|]
//   - error: 参数违反约定时返回（不做部分生成）
func (o *Oscillator) GenerateSamples(count, sampleRate int) ([]float64, error) {
	if err := o.checkArgs(count, sampleRate); err != nil {
		return nil, err
	}

	samples := make([]float64, count)
	for i := range samples {
		samples[i] = o.SampleAt(i, sampleRate)
	}
	return samples, nil
}

// Samples 返回惰性的采样序列，可多次遍历，每次都从索引 0 重新开始
func (o *Oscillator) Samples(count, sampleRate int) (iter.Seq2[int, float64], error) {
	if err := o.checkArgs(count, sampleRate); err != nil {
		return nil, err
	}

	osc := *o
	return func(yield func(int, float64) bool) {
		for i := 0; i < count; i++ {
			if !yield(i, osc.SampleAt(i, sampleRate)) {
				return
			}
		}
	}, nil
}

func (o *Oscillator) checkArgs(count, sampleRate int) error {
	if count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}
	return o.Validate()
}
