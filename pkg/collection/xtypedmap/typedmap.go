package xtypedmap

import "reflect"

// Map 是带值类型索引的键值映射。零值不可用，通过 [New] 创建。
type Map[K comparable] struct {
	values map[K]any
	index  map[reflect.Type]map[K]any
}

// New 创建一个空的类型索引映射。
func New[K comparable]() *Map[K] {
	return &Map[K]{
		values: make(map[K]any),
		index:  make(map[reflect.Type]map[K]any),
	}
}

// Register 注册值类型 V 并重建索引，已存在的条目也会被归类。
// 重复注册同一类型是无害的幂等操作。
func Register[V any, K comparable](m *Map[K]) {
	typ := reflect.TypeOf((*V)(nil)).Elem()
	if _, ok := m.index[typ]; ok {
		return
	}

	sub := make(map[K]any)
	for key, value := range m.values {
		if matchesType(value, typ) {
			sub[key] = value
		}
	}
	m.index[typ] = sub
}

// RegisteredTypes 返回当前已注册的全部索引类型。
func (m *Map[K]) RegisteredTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(m.index))
	for typ := range m.index {
		types = append(types, typ)
	}
	return types
}

// Put 写入键值并更新索引，返回该键之前的值。
func (m *Map[K]) Put(key K, value any) (previous any, replaced bool) {
	previous, replaced = m.values[key]
	if replaced {
		m.unindex(key, previous)
	}

	m.values[key] = value
	for typ, sub := range m.index {
		if matchesType(value, typ) {
			sub[key] = value
		}
	}
	return previous, replaced
}

// Get 返回键对应的值。
func (m *Map[K]) Get(key K) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Delete 删除键并同步清理索引。
func (m *Map[K]) Delete(key K) {
	value, ok := m.values[key]
	if !ok {
		return
	}
	m.unindex(key, value)
	delete(m.values, key)
}

// Len 返回条目数量。
func (m *Map[K]) Len() int {
	return len(m.values)
}

// Keys 返回全部键的副本。
func (m *Map[K]) Keys() []K {
	keys := make([]K, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	return keys
}

// Subset 返回动态类型属于 V 的全部条目副本。
// V 必须先通过 [Register] 注册，未注册时返回 nil。
func Subset[V any, K comparable](m *Map[K]) map[K]V {
	typ := reflect.TypeOf((*V)(nil)).Elem()
	sub, ok := m.index[typ]
	if !ok {
		return nil
	}

	out := make(map[K]V, len(sub))
	for key, value := range sub {
		if value == nil {
			var zero V
			out[key] = zero
			continue
		}
		out[key] = value.(V)
	}
	return out
}

func (m *Map[K]) unindex(key K, value any) {
	for typ, sub := range m.index {
		if matchesType(value, typ) {
			delete(sub, key)
		}
	}
}

// matchesType 判断 value 是否应归入 typ 的索引。
// nil 属于所有类型；接口类型按实现关系匹配。
func matchesType(value any, typ reflect.Type) bool {
	if value == nil {
		return true
	}
	vt := reflect.TypeOf(value)
	if typ.Kind() == reflect.Interface {
		return vt.Implements(typ)
	}
	return vt == typ
}
