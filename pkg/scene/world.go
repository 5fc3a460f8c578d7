// Package scene 提供 UI 场景的实体存储
//
// World 持有一组固定的组件列（Frame、Position、Size、Parent、Oscillator），
// 按实体ID直接索引。场景在启动时一次性生成，之后每帧只读。
package scene

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gonewx/cerise/pkg/components"
	"github.com/gonewx/cerise/pkg/ecs"
	"github.com/gonewx/cerise/pkg/logger"
	"go.uber.org/zap"
)

var (
	// ErrUnknownComponent Spawn 收到不支持的组件类型
	ErrUnknownComponent = errors.New("scene: unknown component type")
	// ErrNilComponent Spawn 收到 nil 组件
	ErrNilComponent = errors.New("scene: nil component")
	// ErrInvalidSize Size 组件宽高为负
	ErrInvalidSize = errors.New("scene: size must be non-negative")
)

// FrameRow 面板查询结果
type FrameRow = ecs.Row3[components.FrameComponent, components.Position, components.Size]

// World 场景实体存储
type World struct {
	Entities    *ecs.EntityManager
	Frames      *ecs.Column[components.FrameComponent]
	Positions   *ecs.Column[components.Position]
	Sizes       *ecs.Column[components.Size]
	Parents     *ecs.Column[components.ParentComponent]
	Oscillators *ecs.Column[components.OscillatorComponent]

	logger *zap.Logger
}

// NewWorld 创建空场景
func NewWorld(l *zap.Logger) *World {
	w := &World{
		Entities:    ecs.NewEntityManager(),
		Frames:      ecs.NewColumn[components.FrameComponent](),
		Positions:   ecs.NewColumn[components.Position](),
		Sizes:       ecs.NewColumn[components.Size](),
		Parents:     ecs.NewColumn[components.ParentComponent](),
		Oscillators: ecs.NewColumn[components.OscillatorComponent](),
		logger:      logger.Named(l, "Scene"),
	}
	w.Entities.Register(w.Frames)
	w.Entities.Register(w.Positions)
	w.Entities.Register(w.Sizes)
	w.Entities.Register(w.Parents)
	w.Entities.Register(w.Oscillators)
	return w
}

// Spawn 用给定的初始组件创建实体
//
// 支持的组件（值或指针均可）：
//   - components.FrameComponent
//   - components.Position
//   - components.Size（宽高必须非负）
//   - components.ParentComponent
//   - components.OscillatorComponent
//
// 同一类型出现多次时以最后一个为准。
// 任一组件不合法时返回错误且不创建实体。
func (w *World) Spawn(cs ...any) (ecs.EntityID, error) {
	apply := make([]func(ecs.EntityID), 0, len(cs))

	for _, c := range cs {
		switch v := c.(type) {
		case nil:
			return ecs.InvalidEntity, ErrNilComponent
		case components.FrameComponent:
			apply = append(apply, func(id ecs.EntityID) { w.Frames.Set(id, v) })
		case *components.FrameComponent:
			if v == nil {
				return ecs.InvalidEntity, ErrNilComponent
			}
			frame := *v
			apply = append(apply, func(id ecs.EntityID) { w.Frames.Set(id, frame) })
		case components.Position:
			apply = append(apply, func(id ecs.EntityID) { w.Positions.Set(id, v) })
		case *components.Position:
			if v == nil {
				return ecs.InvalidEntity, ErrNilComponent
			}
			pos := *v
			apply = append(apply, func(id ecs.EntityID) { w.Positions.Set(id, pos) })
		case components.Size:
			if !v.Valid() {
				return ecs.InvalidEntity, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, v.W, v.H)
			}
			apply = append(apply, func(id ecs.EntityID) { w.Sizes.Set(id, v) })
		case *components.Size:
			if v == nil {
				return ecs.InvalidEntity, ErrNilComponent
			}
			if !v.Valid() {
				return ecs.InvalidEntity, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, v.W, v.H)
			}
			size := *v
			apply = append(apply, func(id ecs.EntityID) { w.Sizes.Set(id, size) })
		case components.ParentComponent:
			apply = append(apply, func(id ecs.EntityID) { w.Parents.Set(id, v) })
		case *components.ParentComponent:
			if v == nil {
				return ecs.InvalidEntity, ErrNilComponent
			}
			parent := *v
			apply = append(apply, func(id ecs.EntityID) { w.Parents.Set(id, parent) })
		case components.OscillatorComponent:
			apply = append(apply, func(id ecs.EntityID) { w.Oscillators.Set(id, v) })
		case *components.OscillatorComponent:
			if v == nil {
				return ecs.InvalidEntity, ErrNilComponent
			}
			osc := *v
			apply = append(apply, func(id ecs.EntityID) { w.Oscillators.Set(id, osc) })
		default:
			return ecs.InvalidEntity, fmt.Errorf("%w: %T", ErrUnknownComponent, c)
		}
	}

	id := w.Entities.CreateEntity()
	for _, fn := range apply {
		fn(id)
	}
	w.logger.Debug("spawned entity", zap.Uint64("id", uint64(id)), zap.Int("components", len(apply)))
	return id, nil
}

// QueryFrames 遍历所有同时拥有 Frame、Position、Size 的实体
func (w *World) QueryFrames() iter.Seq2[ecs.EntityID, FrameRow] {
	return ecs.Query3(w.Entities, w.Frames, w.Positions, w.Sizes)
}

// Parent 读取实体的父引用
//
// 返回：
//   - parent: 父实体ID
//   - transform: 子实体相对父实体的偏移
//   - ok: 实体没有 ParentComponent 或父实体已不存在时为 false
func (w *World) Parent(id ecs.EntityID) (ecs.EntityID, components.Transform, bool) {
	link, found := w.Parents.Get(id)
	if !found {
		return ecs.InvalidEntity, components.Transform{}, false
	}
	if !w.Entities.IsAlive(link.Parent) {
		w.logger.Debug("dangling parent link skipped",
			zap.Uint64("id", uint64(id)),
			zap.Uint64("parent", uint64(link.Parent)))
		return ecs.InvalidEntity, components.Transform{}, false
	}
	return link.Parent, link.Transform, true
}

// Children 按ID升序返回父实体的所有存活子实体
func (w *World) Children(parent ecs.EntityID) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for id, link := range ecs.Query1(w.Entities, w.Parents) {
		if link.Parent == parent && w.Entities.IsAlive(parent) {
			result = append(result, id)
		}
	}
	return result
}

// ResolveTransform 沿父链组合偏移，得到实体相对根实体的总平移
//
// 返回根实体ID与组合后的变换。没有父引用的实体返回自身与单位变换。
// 父链中出现悬空引用或环时 ok 为 false。
func (w *World) ResolveTransform(id ecs.EntityID) (root ecs.EntityID, t components.Transform, ok bool) {
	if !w.Entities.IsAlive(id) {
		return ecs.InvalidEntity, components.Transform{}, false
	}

	visited := map[ecs.EntityID]bool{id: true}
	current := id
	total := components.Identity()
	for {
		if !w.Parents.Has(current) {
			return current, total, true
		}
		parent, offset, found := w.Parent(current)
		if !found || visited[parent] {
			return ecs.InvalidEntity, components.Transform{}, false
		}
		visited[parent] = true
		total = total.Compose(offset)
		current = parent
	}
}
