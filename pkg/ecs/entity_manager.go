package ecs

import "slices"

// EntityID 是实体的唯一标识符
type EntityID uint64

// Entity 是可被 EntityManager 管理的实体
// 实体自己维护删除标记，管理器只负责在清理时移除它们
type Entity interface {
	IsMarkedForDeletion() bool
}

type entry[T Entity] struct {
	id     EntityID
	entity T
}

// EntityManager 按顺序管理所有实体
//
// 删除是惰性的：实体先被标记，直到调用 RemoveMarkedEntities 才真正移除。
// 遍历顺序就是集合顺序（插入顺序，或最近一次 SortStableFunc 的结果）。
type EntityManager[T Entity] struct {
	nextID  uint64
	entries []entry[T]
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T Entity]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:  1, // ID从1开始,0保留为无效ID
		entries: make([]entry[T], 0),
	}
}

// CreateEntity 将实体追加到集合末尾并返回唯一ID
func (em *EntityManager[T]) CreateEntity(entity T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entries = append(em.entries, entry[T]{id: id, entity: entity})
	return id
}

// Len 返回当前集合中的实体数量（包括已标记但尚未清理的实体）
func (em *EntityManager[T]) Len() int {
	return len(em.entries)
}

// Each 按集合顺序遍历所有实体
func (em *EntityManager[T]) Each(fn func(id EntityID, entity T)) {
	for _, e := range em.entries {
		fn(e.id, e.entity)
	}
}

// Entities 返回按集合顺序排列的实体快照
func (em *EntityManager[T]) Entities() []T {
	result := make([]T, 0, len(em.entries))
	for _, e := range em.entries {
		result = append(result, e.entity)
	}
	return result
}

// IDs 返回按集合顺序排列的实体ID快照
func (em *EntityManager[T]) IDs() []EntityID {
	result := make([]EntityID, 0, len(em.entries))
	for _, e := range em.entries {
		result = append(result, e.id)
	}
	return result
}

// SortStableFunc 使用 cmp 对集合做稳定排序，相等元素保持原有相对顺序
func (em *EntityManager[T]) SortStableFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(em.entries, func(a, b entry[T]) int {
		return cmp(a.entity, b.entity)
	})
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回移除的数量
func (em *EntityManager[T]) RemoveMarkedEntities() int {
	kept := em.entries[:0]
	for _, e := range em.entries {
		if !e.entity.IsMarkedForDeletion() {
			kept = append(kept, e)
		}
	}
	removed := len(em.entries) - len(kept)

	// 清空尾部，避免已删除实体被底层数组继续引用
	var zero entry[T]
	for i := len(kept); i < len(em.entries); i++ {
		em.entries[i] = zero
	}
	em.entries = kept
	return removed
}
