package ecs

import "iter"

// Row2 查询结果中的两个组件
type Row2[A, B any] struct {
	First  *A
	Second *B
}

// Row3 查询结果中的三个组件
type Row3[A, B, C any] struct {
	First  *A
	Second *B
	Third  *C
}

// Query1 遍历拥有组件 A 的所有存活实体
//
// 遍历顺序为实体ID升序，对同一存储状态是稳定的。
func Query1[A any](em *EntityManager, a *Column[A]) iter.Seq2[EntityID, *A] {
	return func(yield func(EntityID, *A) bool) {
		for _, id := range em.GetEntitiesWith(a) {
			ca, _ := a.Get(id)
			if !yield(id, ca) {
				return
			}
		}
	}
}

// Query2 遍历同时拥有组件 A、B 的所有存活实体
func Query2[A, B any](em *EntityManager, a *Column[A], b *Column[B]) iter.Seq2[EntityID, Row2[A, B]] {
	return func(yield func(EntityID, Row2[A, B]) bool) {
		for _, id := range em.GetEntitiesWith(a, b) {
			ca, _ := a.Get(id)
			cb, _ := b.Get(id)
			if !yield(id, Row2[A, B]{First: ca, Second: cb}) {
				return
			}
		}
	}
}

// Query3 遍历同时拥有组件 A、B、C 的所有存活实体
func Query3[A, B, C any](em *EntityManager, a *Column[A], b *Column[B], c *Column[C]) iter.Seq2[EntityID, Row3[A, B, C]] {
	return func(yield func(EntityID, Row3[A, B, C]) bool) {
		for _, id := range em.GetEntitiesWith(a, b, c) {
			ca, _ := a.Get(id)
			cb, _ := b.Get(id)
			cc, _ := c.Get(id)
			if !yield(id, Row3[A, B, C]{First: ca, Second: cb, Third: cc}) {
				return
			}
		}
	}
}
