package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct {
	Name string
}

func newTestManager() (*EntityManager, *Column[testPositionComponent], *Column[testVelocityComponent]) {
	em := NewEntityManager()
	pos := NewColumn[testPositionComponent]()
	vel := NewColumn[testVelocityComponent]()
	em.Register(pos)
	em.Register(vel)
	return em, pos, vel
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	assert.NotEqual(t, id1, id2)

	// 测试ID从1开始
	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)

	assert.True(t, em.IsAlive(id1))
	assert.False(t, em.IsAlive(InvalidEntity))
	assert.False(t, em.IsAlive(99))
	assert.Equal(t, 2, em.Count())
}

func TestAddAndGetComponent(t *testing.T) {
	em, pos, _ := newTestManager()
	id := em.CreateEntity()

	pos.Set(id, testPositionComponent{X: 100, Y: 200})

	retrieved, found := pos.Get(id)
	require.True(t, found, "Component should be found")
	assert.Equal(t, 100.0, retrieved.X)
	assert.Equal(t, 200.0, retrieved.Y)

	// 覆盖不改变计数
	pos.Set(id, testPositionComponent{X: 1})
	assert.Equal(t, 1, pos.Len())

	// 无效ID被忽略
	pos.Set(InvalidEntity, testPositionComponent{})
	assert.False(t, pos.Has(InvalidEntity))
}

func TestHasAndRemoveComponent(t *testing.T) {
	em, pos, _ := newTestManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	assert.False(t, pos.Has(id))

	pos.Set(id, testPositionComponent{})
	assert.True(t, pos.Has(id))

	pos.Remove(id)
	assert.False(t, pos.Has(id))
	assert.Equal(t, 0, pos.Len())

	// 重复删除无副作用
	pos.Remove(id)
	assert.Equal(t, 0, pos.Len())
}

func TestDestroyEntity(t *testing.T) {
	em, pos, vel := newTestManager()
	id := em.CreateEntity()
	pos.Set(id, testPositionComponent{})
	vel.Set(id, testVelocityComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	assert.True(t, em.IsAlive(id))
	assert.True(t, pos.Has(id))
	assert.True(t, vel.Has(id))

	// 清理后实体及其所有组件一起消失
	em.RemoveMarkedEntities()
	assert.False(t, em.IsAlive(id))
	assert.False(t, pos.Has(id))
	assert.False(t, vel.Has(id))

	// ID 不复用
	next := em.CreateEntity()
	assert.NotEqual(t, id, next)
	assert.Equal(t, id+1, next)
}

func TestGetEntitiesWith(t *testing.T) {
	em, pos, vel := newTestManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	pos.Set(id1, testPositionComponent{})
	vel.Set(id1, testVelocityComponent{})

	id2 := em.CreateEntity()
	pos.Set(id2, testPositionComponent{})

	id3 := em.CreateEntity()
	vel.Set(id3, testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	assert.Equal(t, []EntityID{id1}, em.GetEntitiesWith(pos, vel))

	// 查询只拥有 Position 的实体
	assert.Equal(t, []EntityID{id1, id2}, em.GetEntitiesWith(pos))

	// 不带条件时返回所有存活实体
	assert.Equal(t, em.Entities(), em.GetEntitiesWith())
}

func TestQueryOrderIsStable(t *testing.T) {
	em, pos, _ := newTestManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		pos.Set(id, testPositionComponent{X: float64(i)})
	}

	var first, second []EntityID
	for id := range Query1(em, pos) {
		first = append(first, id)
	}
	for id := range Query1(em, pos) {
		second = append(second, id)
	}

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1], first[i])
	}
}

func TestQuery2And3(t *testing.T) {
	em, pos, vel := newTestManager()
	tags := NewColumn[testTagComponent]()
	em.Register(tags)

	a := em.CreateEntity()
	pos.Set(a, testPositionComponent{X: 1, Y: 2})
	vel.Set(a, testVelocityComponent{VX: 3, VY: 4})
	tags.Set(a, testTagComponent{Name: "a"})

	b := em.CreateEntity()
	pos.Set(b, testPositionComponent{X: 5})
	vel.Set(b, testVelocityComponent{VX: 6})

	n := 0
	for id, row := range Query2(em, pos, vel) {
		n++
		if id == a {
			assert.Equal(t, 1.0, row.First.X)
			assert.Equal(t, 3.0, row.Second.VX)
		}
	}
	assert.Equal(t, 2, n)

	n = 0
	for id, row := range Query3(em, pos, vel, tags) {
		n++
		assert.Equal(t, a, id)
		assert.Equal(t, "a", row.Third.Name)
	}
	assert.Equal(t, 1, n)

	// 组件通过指针可修改
	for _, p := range Query1(em, pos) {
		p.X += 10
	}
	got, _ := pos.Get(a)
	assert.Equal(t, 11.0, got.X)
}

func TestQueryNeverSeesHalfRemovedEntity(t *testing.T) {
	em, pos, vel := newTestManager()
	id := em.CreateEntity()
	pos.Set(id, testPositionComponent{})
	vel.Set(id, testVelocityComponent{})

	em.DestroyEntity(id)
	assert.Len(t, em.GetEntitiesWith(pos, vel), 1)

	em.RemoveMarkedEntities()
	assert.Empty(t, em.GetEntitiesWith(pos))
	assert.Empty(t, em.GetEntitiesWith(vel))
}

func TestQueryUnregisteredColumnIsEmpty(t *testing.T) {
	em, pos, _ := newTestManager()
	id := em.CreateEntity()
	pos.Set(id, testPositionComponent{})

	never := NewColumn[testTagComponent]()
	n := 0
	for range Query2(em, pos, never) {
		n++
	}
	assert.Equal(t, 0, n)
}
