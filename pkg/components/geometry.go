package components

// 几何基础类型
//
// 所有坐标均为屏幕坐标系：原点在左上角，Y 轴向下。
// 数值使用 Go 的 int，溢出时按补码回绕（Go 语言规范定义的行为），不做饱和处理。
// 缓冲区尺寸例外：RenderSystem.Render 会拒绝 width*height*4 溢出的宽高，而不是让它回绕。

// Position 实体的屏幕坐标（左上角）
// 允许为负值（部分或全部位于缓冲区之外时由光栅化循环裁剪）
type Position struct {
	X int
	Y int
}

// Translate 返回平移 (dx, dy) 后的新坐标
func (p Position) Translate(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Size 实体的宽高（像素）
// 可绘制实体要求 W、H 均非负；0 表示退化的空矩形
type Size struct {
	W int
	H int
}

// Valid 检查宽高是否非负
func (s Size) Valid() bool {
	return s.W >= 0 && s.H >= 0
}

// Transform 纯平移变换，表示子实体在父实体局部空间中的偏移
//
// 组合即分量相加：满足交换律、结合律，单位元为零值 Transform{}。
type Transform struct {
	DX int
	DY int
}

// Identity 返回单位变换 (0, 0)
func Identity() Transform {
	return Transform{}
}

// Compose 组合两个平移变换
//
// t.Compose(other) 与 other.Compose(t) 结果相同。
func (t Transform) Compose(other Transform) Transform {
	return Transform{DX: t.DX + other.DX, DY: t.DY + other.DY}
}

// Apply 将平移应用到坐标上
func (t Transform) Apply(p Position) Position {
	return p.Translate(t.DX, t.DY)
}
