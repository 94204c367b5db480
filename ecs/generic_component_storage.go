package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage owns a registry reference, so independent worlds never share columns.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a component type with the given registry.
// This must be called for each component type before an entity carrying it is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// Registered reports whether a component type has a storage factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const genericPageSize = 64

// componentPage is allocated once and never moved, so pointers handed out by
// Get stay valid for the lifetime of the slot.
type componentPage[T any] struct {
	values [genericPageSize]T
	filled [genericPageSize]bool
}

// genericComponentStorage stores components of type T in fixed-size pages.
// Slots are never reused, so an EntityId stays dead once its slot is deleted.
type genericComponentStorage[T any] struct {
	pages     []*componentPage[T]
	nextIndex int
	count     int
}

// Append adds a component and returns its slot index.
func (cs *genericComponentStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	index := cs.nextIndex
	cs.nextIndex++
	if index/genericPageSize >= len(cs.pages) {
		cs.pages = append(cs.pages, &componentPage[T]{})
	}

	page := cs.pages[index/genericPageSize]
	page.values[index%genericPageSize] = value
	page.filled[index%genericPageSize] = true
	cs.count++
	return index
}

func (cs *genericComponentStorage[T]) slot(index int) (*componentPage[T], int, bool) {
	if index < 0 || index >= cs.nextIndex {
		return nil, 0, false
	}
	return cs.pages[index/genericPageSize], index % genericPageSize, true
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (cs *genericComponentStorage[T]) Get(index int) any {
	page, i, ok := cs.slot(index)
	if !ok || !page.filled[i] {
		return nil
	}
	return &page.values[i]
}

// Delete zeroes the slot and leaves it empty.
func (cs *genericComponentStorage[T]) Delete(index int) {
	page, i, ok := cs.slot(index)
	if !ok || !page.filled[i] {
		return
	}

	var zero T
	page.values[i] = zero
	page.filled[i] = false
	cs.count--
}

func (cs *genericComponentStorage[T]) Has(index int) bool {
	page, i, ok := cs.slot(index)
	return ok && page.filled[i]
}

func (cs *genericComponentStorage[T]) Len() int {
	return cs.count
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if !cs.pages[i/genericPageSize].filled[i%genericPageSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
