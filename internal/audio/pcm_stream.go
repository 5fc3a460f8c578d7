// Package audio 将振荡器采样编码为 PCM 数据
//
// 只负责编码与读取，不打开任何音频输出设备。
// PCMStream 满足 io.ReadSeeker 并提供 Length，可以直接交给 Ebitengine 的音频播放器使用。
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
)

// PCMStream 16-bit 有符号小端 PCM 数据流
//
// 读取与定位由内嵌的 bytes.Reader 提供；Length 始终是完整数据的字节数，与当前读取位置无关。
type PCMStream struct {
	*bytes.Reader
	sampleRate int
	channels   int
}

// NewPCMStream 将单声道浮点采样编码为 PCM 流
// 采样值按 [-1, 1] 映射到 int16，超出范围的值被截断，NaN 记为 0
func NewPCMStream(samples []float64, sampleRate int) *PCMStream {
	return newPCMStream(encodePCM16(samples), sampleRate, 1)
}

func newPCMStream(le []byte, sampleRate, channels int) *PCMStream {
	return &PCMStream{
		Reader:     bytes.NewReader(le),
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// Length 数据总字节数（Ebitengine audio.Player 需要）
func (s *PCMStream) Length() int64 {
	return s.Size()
}

// SampleRate 采样率（Hz）
func (s *PCMStream) SampleRate() int {
	return s.sampleRate
}

// Channels 声道数（1=单声道, 2=立体声）
func (s *PCMStream) Channels() int {
	return s.channels
}

// SampleCount 每个声道的采样数
func (s *PCMStream) SampleCount() int {
	return int(s.Length()) / 2 / s.channels
}

// toPCM16 将 [-1, 1] 的浮点采样转换为 int16
func toPCM16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}

func encodePCM16(samples []float64) []byte {
	data := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(toPCM16(v)))
	}
	return data
}

// swap16 原地交换每个 16-bit 采样的字节序，末尾不足 2 字节的部分保持不变
func swap16(b []byte) {
	for i := 0; i+1 < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
}
