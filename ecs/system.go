package ecs

// System is a behavior run by the Scheduler once per frame (or once at startup).
// Implementations declare Query, Single and Singleton fields, which the Scheduler
// binds at registration; other fields hold state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
