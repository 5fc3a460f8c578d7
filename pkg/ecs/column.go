package ecs

// Column 按实体ID直接索引的组件存储（arena + index）
//
// 每种组件类型一列，列与列之间互相平行，不依赖反射按类型查找。
// Get 返回的指针指向列内部的切片，在下一次 Set 之前有效。
type Column[T any] struct {
	data    []T
	present []bool
	count   int
}

// NewColumn 创建一个空的组件列
func NewColumn[T any]() *Column[T] {
	return &Column[T]{}
}

// Set 为实体设置组件（已存在则覆盖）
func (c *Column[T]) Set(id EntityID, value T) {
	if id == InvalidEntity {
		return
	}
	c.grow(id)
	if !c.present[id] {
		c.present[id] = true
		c.count++
	}
	c.data[id] = value
}

// Get 获取实体的组件
func (c *Column[T]) Get(id EntityID) (*T, bool) {
	if !c.Has(id) {
		return nil, false
	}
	return &c.data[id], true
}

// Has 检查实体是否拥有该组件
func (c *Column[T]) Has(id EntityID) bool {
	return uint64(id) < uint64(len(c.present)) && c.present[id]
}

// Remove 移除实体的组件
func (c *Column[T]) Remove(id EntityID) {
	if !c.Has(id) {
		return
	}
	var zero T
	c.data[id] = zero
	c.present[id] = false
	c.count--
}

// Len 返回拥有该组件的实体数量
func (c *Column[T]) Len() int {
	return c.count
}

func (c *Column[T]) grow(id EntityID) {
	need := int(id) + 1
	if need <= len(c.data) {
		return
	}
	c.data = append(c.data, make([]T, need-len(c.data))...)
	c.present = append(c.present, make([]bool, need-len(c.present))...)
}
