package systems

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gonewx/cerise/pkg/components"
	"github.com/gonewx/cerise/pkg/config"
	"github.com/gonewx/cerise/pkg/logger"
	"github.com/gonewx/cerise/pkg/scene"
	"go.uber.org/zap"
)

var (
	// ErrInvalidDimensions 缓冲区宽高为负，或 width*height*4 超出 int 范围
	ErrInvalidDimensions = errors.New("render: invalid buffer dimensions")
	// ErrBufferSize 缓冲区长度与 width*height*4 不一致
	ErrBufferSize = errors.New("render: buffer length does not match width*height*4")
)

// Segment 由两个端点定义的轴对齐线段（缓冲区坐标）
type Segment struct {
	Start components.Position
	End   components.Position
}

// Contains 判断像素是否落在线段端点构成的闭合包围盒内
//
// 轴对齐线段的包围盒宽或高为 0，因此结果就是线段本身覆盖的像素（含两个端点）。
func (s Segment) Contains(x, y int) bool {
	return min(s.Start.X, s.End.X) <= x && x <= max(s.Start.X, s.End.X) &&
		min(s.Start.Y, s.End.Y) <= y && y <= max(s.Start.Y, s.End.Y)
}

// FrameSegments 计算矩形的四条边：上、下、左、右
// pos 为左上角，size 为范围
func FrameSegments(pos components.Position, size components.Size) [4]Segment {
	right := pos.X + size.W
	bottom := pos.Y + size.H
	return [4]Segment{
		{Start: pos, End: components.Position{X: right, Y: pos.Y}},
		{Start: components.Position{X: pos.X, Y: bottom}, End: components.Position{X: right, Y: bottom}},
		{Start: pos, End: components.Position{X: pos.X, Y: bottom}},
		{Start: components.Position{X: right, Y: pos.Y}, End: components.Position{X: right, Y: bottom}},
	}
}

// RenderSystem 将场景中的面板光栅化到 RGBA 字节缓冲区
//
// 渲染流程：
//  1. 查询所有拥有 Frame + Position + Size 的实体
//  2. 每个实体生成四条边线段，汇总到同一个列表（不再关联回实体）
//  3. 逐像素扫描：落在任一线段包围盒内为边框色，否则为背景色
//  4. 按行优先写入 4 字节 RGBA，alpha 不透明
//
// 四条边都是轴对齐线段，包围盒退化为一行或一列像素，
// 所以每个面板画出的是 1 像素宽的闭合边框，内部保持背景色。
// 尺寸为 0 的面板退化为单个像素。
//
// 复杂度为 O(width*height*segments)，只适用于数百像素边长、数十条线段的规模；
// 更大的画布或实体数量需要空间索引（如分桶），目前未实现。
type RenderSystem struct {
	world      *scene.World
	segments   []Segment // 线段列表（复用，避免每帧分配）
	background [4]byte
	border     [4]byte
	logger     *zap.Logger
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(w *scene.World, l *zap.Logger) *RenderSystem {
	return &RenderSystem{
		world:      w,
		segments:   make([]Segment, 0, 16),
		background: rgbaBytes(config.BackgroundColor),
		border:     rgbaBytes(config.BorderColor),
		logger:     logger.Named(l, "Render"),
	}
}

// Render 将当前场景绘制到 buf
//
// 参数：
//   - buf: 长度必须为 width*height*4 的 RGBA 缓冲区，原地修改
//   - width, height: 缓冲区宽高（像素），不能为负
//
// 返回：
//   - error: 参数不合法时返回，此时 buf 不被修改
func (s *RenderSystem) Render(buf []byte, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	// width*height*4 超出 int 范围时会回绕，可能恰好等于 len(buf)
	if width > 0 && height > math.MaxInt/config.BytesPerPixel/width {
		return fmt.Errorf("%w: %dx%d overflows int", ErrInvalidDimensions, width, height)
	}
	if want := width * height * config.BytesPerPixel; len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d (%dx%d)", ErrBufferSize, len(buf), want, width, height)
	}

	s.collectSegments()

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgba := &s.background
			if s.hitsAnySegment(x, y) {
				rgba = &s.border
			}
			copy(buf[i:i+config.BytesPerPixel], rgba[:])
			i += config.BytesPerPixel
		}
	}
	return nil
}

// RenderImage 将当前场景绘制到 img
// img 必须从 (0,0) 开始且行之间没有填充（Stride == 宽度*4）
func (s *RenderSystem) RenderImage(img *image.RGBA) error {
	b := img.Bounds()
	if b.Min != (image.Point{}) || img.Stride != b.Dx()*config.BytesPerPixel {
		return fmt.Errorf("%w: image must be tightly packed from origin, bounds=%v stride=%d",
			ErrBufferSize, b, img.Stride)
	}
	return s.Render(img.Pix, b.Dx(), b.Dy())
}

// Segments 返回最近一次渲染收集到的线段
func (s *RenderSystem) Segments() []Segment {
	return s.segments
}

func (s *RenderSystem) collectSegments() {
	s.segments = s.segments[:0]
	frames := 0
	for _, row := range s.world.QueryFrames() {
		edges := FrameSegments(*row.Second, *row.Third)
		s.segments = append(s.segments, edges[:]...)
		frames++
	}

	if ce := s.logger.Check(zap.DebugLevel, "segments collected"); ce != nil {
		ce.Write(zap.Int("frames", frames), zap.Any("segments", s.segments))
	}
}

func (s *RenderSystem) hitsAnySegment(x, y int) bool {
	for i := range s.segments {
		if s.segments[i].Contains(x, y) {
			return true
		}
	}
	return false
}

func rgbaBytes(c color.RGBA) [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}
