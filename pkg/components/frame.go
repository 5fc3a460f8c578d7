package components

// FrameComponent 标记实体为顶层可绘制面板（带边框）
// 需要同时拥有 Position 与 Size 才会被渲染，缺少任意一个的实体由查询自然过滤掉
type FrameComponent struct {
	// Title 面板标题（当前只用于日志与调试）
	Title string
}
