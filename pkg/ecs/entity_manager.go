package ecs

// EntityID 是实体的唯一标识符
// 0 保留为无效ID；ID 在 EntityManager 生命周期内单调递增，不会复用
type EntityID uint64

// InvalidEntity 无效实体ID
const InvalidEntity EntityID = 0

// Storage 是 EntityManager 在批量删除实体时需要清理的组件存储
type Storage interface {
	Has(id EntityID) bool
	Remove(id EntityID)
}

// EntityManager 管理实体的分配与生命周期
//
// 组件数据不保存在这里，而是存放在各自的 Column[T] 中，按实体ID直接索引。
// 注册到 EntityManager 的列会在 RemoveMarkedEntities 时统一清理。
type EntityManager struct {
	nextID uint64
	// alive[id] 表示实体是否存活，下标即实体ID（下标 0 不使用）
	alive []bool
	// 已注册的组件列
	columns []Storage
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		alive:             make([]bool, 1),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// Register 注册组件列，使其参与实体删除
func (em *EntityManager) Register(c Storage) {
	em.columns = append(em.columns, c)
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.alive = append(em.alive, true)
	return id
}

// IsAlive 检查实体是否存在
func (em *EntityManager) IsAlive(id EntityID) bool {
	return id != InvalidEntity && uint64(id) < uint64(len(em.alive)) && em.alive[id]
}

// DestroyEntity 标记实体待删除(不立即删除)
// 在 RemoveMarkedEntities 之前，查询仍能看到该实体的全部组件
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.IsAlive(id) {
		return
	}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 一个实体的所有组件在同一次调用中移除，查询不会看到只删了一半的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		if !em.IsAlive(id) {
			continue
		}
		for _, c := range em.columns {
			c.Remove(id)
		}
		em.alive[id] = false
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	n := 0
	for _, ok := range em.alive {
		if ok {
			n++
		}
	}
	return n
}

// Entities 按ID升序返回所有存活实体
func (em *EntityManager) Entities() []EntityID {
	result := make([]EntityID, 0, len(em.alive))
	for id, ok := range em.alive {
		if ok {
			result = append(result, EntityID(id))
		}
	}
	return result
}

// GetEntitiesWith 查询拥有指定组件列组合的所有实体
// 参数: columns ...Storage - 需要的组件列
// 返回: []EntityID - 满足条件的实体ID列表（按ID升序）
func (em *EntityManager) GetEntitiesWith(columns ...Storage) []EntityID {
	result := make([]EntityID, 0)

	for id, ok := range em.alive {
		if !ok {
			continue
		}
		hasAll := true
		for _, c := range columns {
			if !c.Has(EntityID(id)) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, EntityID(id))
		}
	}

	return result
}
