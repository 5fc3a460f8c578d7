package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Sun/NeXT .au 文件头（全部字段为大端 uint32）
type auHeader struct {
	Magic      uint32 // ".snd"
	DataOffset uint32 // 音频数据起始偏移（至少 24）
	DataSize   uint32 // 数据字节数，未知时为 0xFFFFFFFF
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

const (
	auMagic         = 0x2e736e64 // ".snd"
	auHeaderSize    = 24
	auEncodingPCM16 = 3 // 16-bit 线性 PCM
	auUnknownSize   = 0xFFFFFFFF
)

// EncodeAU 将 PCM 流写为 .au 文件（16-bit 线性 PCM，大端）
//
// 参数：
//   - w: 输出目标
//   - s: 要写出的 PCM 流，整段写出，不改变其读取位置
func EncodeAU(w io.Writer, s *PCMStream) error {
	if s.SampleRate() <= 0 {
		return fmt.Errorf("invalid sample rate: %d", s.SampleRate())
	}

	body := make([]byte, s.Length())
	if len(body) > 0 {
		if _, err := s.ReadAt(body, 0); err != nil {
			return fmt.Errorf("failed to read PCM stream: %w", err)
		}
	}
	swap16(body)

	header := auHeader{
		Magic:      auMagic,
		DataOffset: auHeaderSize,
		DataSize:   uint32(len(body)),
		Encoding:   auEncodingPCM16,
		SampleRate: uint32(s.SampleRate()),
		Channels:   uint32(s.Channels()),
	}
	if err := binary.Write(w, binary.BigEndian, &header); err != nil {
		return fmt.Errorf("failed to write AU header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write AU data: %w", err)
	}
	return nil
}

// DecodeAU 读取 16-bit 线性 PCM 编码的 .au 文件，返回小端 PCM 流
func DecodeAU(r io.Reader) (*PCMStream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum %d)", len(data), auHeaderSize)
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}
	if header.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x", header.Magic)
	}
	if header.Encoding != auEncodingPCM16 {
		return nil, fmt.Errorf("unsupported AU encoding %d, want 16-bit linear PCM", header.Encoding)
	}
	if header.Channels < 1 || header.Channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d", header.Channels)
	}

	offset := int(header.DataOffset)
	if offset < auHeaderSize || offset > len(data) {
		return nil, fmt.Errorf("invalid data offset %d (file size %d)", offset, len(data))
	}
	body := data[offset:]
	if header.DataSize != auUnknownSize && int(header.DataSize) <= len(body) {
		body = body[:header.DataSize]
	}
	// 只保留完整的 16-bit 采样
	pcm := append([]byte(nil), body[:len(body)&^1]...)
	swap16(pcm)

	return newPCMStream(pcm, int(header.SampleRate), int(header.Channels)), nil
}
