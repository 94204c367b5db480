package ecs

// Single is a Query that expects exactly one matching entity, such as the
// scene's only camera.
type Single[T any] struct {
	query Query[T]
}

// NewSingle creates a Single bound to storage.
func NewSingle[T any](storage *Storage) *Single[T] {
	s := &Single[T]{}
	s.Init(storage)
	return s
}

// Init binds the Single to storage. Called by the Scheduler.
func (s *Single[T]) Init(storage *Storage) {
	s.query.Init(storage)
}

// Execute refreshes the match. Called by the Scheduler before the owning system runs.
func (s *Single[T]) Execute() {
	s.query.Execute()
}

// Get returns the matching entity's components. ok is false when zero or
// more than one entity matched at the last Execute.
func (s *Single[T]) Get() (value T, ok bool) {
	if s.query.Len() != 1 {
		return value, false
	}
	for _, item := range s.query.Iter() {
		value = item
	}
	return value, true
}

// Id returns the ID of the matching entity, with the same ok semantics as Get.
func (s *Single[T]) Id() (EntityId, bool) {
	if s.query.Len() != 1 {
		return 0, false
	}
	return s.query.cachedEntities[0], true
}
