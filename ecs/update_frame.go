package ecs

// UpdateFrame is what a system sees of the current stage run.
type UpdateFrame struct {
	// DeltaTime is the wall-clock time since the previous update, in seconds.
	// It is zero during the startup stage.
	DeltaTime float64
	// Elapsed is the sum of every DeltaTime so far.
	Elapsed  float64
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(dt, elapsed float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Elapsed:   elapsed,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
