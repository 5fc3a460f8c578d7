package components

import "github.com/gonewx/cerise/pkg/ecs"

// ParentComponent 子实体指向父实体的引用（不拥有父实体）
//
// 父实体可能已被删除，读取时必须检查有效性（见 scene.World.Parent）。
// 渲染系统当前不使用 Transform 做坐标合成。
type ParentComponent struct {
	// Parent 父实体ID
	Parent ecs.EntityID
	// Transform 子实体在父实体局部空间中的偏移
	Transform Transform
}
