package debugui

import (
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
	// FloatArray is the length of a [N]float32 field with N in 2..4 (vectors,
	// colors), and zero otherwise.
	FloatArray int
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of a struct type. Non-struct types have none.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:       field.Name,
				Type:       fieldType,
				Index:      i,
				IsPointer:  isPointer,
				IsStruct:   fieldType.Kind() == reflect.Struct,
				FloatArray: floatArrayLen(fieldType),
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

func floatArrayLen(t reflect.Type) int {
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Float32 {
		return 0
	}
	if n := t.Len(); n >= 2 && n <= 4 {
		return n
	}
	return 0
}

var globalReflectionCache = NewReflectionCache()
