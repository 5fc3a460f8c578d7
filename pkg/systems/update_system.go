package systems

import "github.com/gonewx/cerise/pkg/scene"

// UpdateSystem 每帧重绘前调用一次的更新扩展点
// 预留给后续的动画/逻辑（如移动面板位置），目前不修改场景
type UpdateSystem struct {
	world *scene.World // 预留：目前 Update 不读取场景
	ticks uint64
}

// NewUpdateSystem 创建更新系统
func NewUpdateSystem(w *scene.World) *UpdateSystem {
	return &UpdateSystem{world: w}
}

// Update 执行一次更新（空操作）
func (s *UpdateSystem) Update(deltaTime float64) {
	s.ticks++
}

// Ticks 返回已执行的更新次数
func (s *UpdateSystem) Ticks() uint64 {
	return s.ticks
}
