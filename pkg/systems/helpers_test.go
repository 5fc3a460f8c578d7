package systems

import (
	"testing"

	"github.com/gonewx/cerise/pkg/config"
	"github.com/gonewx/cerise/pkg/scene"
)

var (
	testBackground = rgbaBytes(config.BackgroundColor)
	testBorder     = rgbaBytes(config.BorderColor)
)

// newTestBuffer 创建测试用的 RGBA 缓冲区，预先填充非法值以便发现漏写的像素
func newTestBuffer(width, height int) []byte {
	buf := make([]byte, width*height*config.BytesPerPixel)
	for i := range buf {
		buf[i] = 0xAA
	}
	return buf
}

// pixelAt 读取缓冲区中 (x, y) 的像素
func pixelAt(buf []byte, width, x, y int) [4]byte {
	i := (y*width + x) * config.BytesPerPixel
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

// renderWorld 渲染场景并在出错时终止测试
func renderWorld(t *testing.T, w *scene.World, width, height int) []byte {
	t.Helper()
	buf := newTestBuffer(width, height)
	if err := NewRenderSystem(w, nil).Render(buf, width, height); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf
}

// onOutline 判断 (x, y) 是否落在左上角 (x0, y0)、尺寸 w×h 的面板边框上
func onOutline(x, y, x0, y0, w, h int) bool {
	inX := x >= x0 && x <= x0+w
	inY := y >= y0 && y <= y0+h
	return (inX && (y == y0 || y == y0+h)) || (inY && (x == x0 || x == x0+w))
}
