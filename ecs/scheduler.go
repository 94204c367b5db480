package ecs

import (
	"context"
	"reflect"
	"time"
)

// Stage selects when a registered system runs.
type Stage int

const (
	// StageStartup systems run once, before the first update.
	StageStartup Stage = iota
	// StageUpdate systems run on every call to Once.
	StageUpdate
)

func (s Stage) String() string {
	switch s {
	case StageStartup:
		return "Startup"
	case StageUpdate:
		return "Update"
	default:
		return "Unknown"
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type registeredSystem struct {
	name    string
	stage   Stage
	system  System
	queries []queryExecutor
	stats   systemStatsInternal
}

type storageBinder interface {
	Init(storage *Storage)
}

type queryExecutor interface {
	Execute()
}

// Scheduler runs systems in registration order, with a one-time startup stage
// ahead of the repeating update stage.
type Scheduler struct {
	storage *Storage
	startup []*registeredSystem
	update  []*registeredSystem
	started bool
	elapsed float64
	frames  int64
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// Register adds an update-stage system and binds its Query, Single and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.update = append(s.update, s.bind(system, StageUpdate))
}

// RegisterStartup adds a system that runs once, before the first update.
// Registering after the startup stage has run panics.
func (s *Scheduler) RegisterStartup(system System) {
	if s.started {
		panic("RegisterStartup called after the startup stage ran")
	}
	s.startup = append(s.startup, s.bind(system, StageStartup))
}

func (s *Scheduler) bind(system System, stage Stage) *registeredSystem {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	return &registeredSystem{
		name:    systemType.Name(),
		stage:   stage,
		system:  system,
		queries: s.initializeQueries(system),
		stats:   systemStatsInternal{minDuration: time.Duration(1<<63 - 1)},
	}
}

func (s *Scheduler) initializeQueries(system System) []queryExecutor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr || systemValue.Elem().Kind() != reflect.Struct {
		return nil
	}
	systemValue = systemValue.Elem()

	var executors []queryExecutor
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		addr := field.Addr().Interface()
		binder, ok := addr.(storageBinder)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if executor, ok := addr.(queryExecutor); ok {
			executors = append(executors, executor)
		}
	}
	return executors
}

// Started reports whether the startup stage has run.
func (s *Scheduler) Started() bool {
	return s.started
}

// Once runs the startup stage if it has not run yet, then the update stage
// with the given delta time. Commands are flushed at the end of each stage.
func (s *Scheduler) Once(dt float64) {
	if !s.started {
		s.started = true
		s.runStage(s.startup, 0)
	}

	s.elapsed += dt
	s.frames++
	s.runStage(s.update, dt)
}

func (s *Scheduler) runStage(systems []*registeredSystem, dt float64) {
	frame := newUpdateFrame(dt, s.elapsed, s.storage)

	for _, rs := range systems {
		for _, q := range rs.queries {
			q.Execute()
		}

		start := time.Now()
		rs.system.Execute(frame)
		duration := time.Since(start)

		stats := &rs.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}

	frame.Commands.Flush(s.storage)
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics for every system, startup systems first.
func (s *Scheduler) GetStats() *SchedulerStats {
	all := make([]*registeredSystem, 0, len(s.startup)+len(s.update))
	all = append(all, s.startup...)
	all = append(all, s.update...)

	stats := &SchedulerStats{
		SystemCount: len(all),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(all)),
	}

	for i, rs := range all {
		internal := rs.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           rs.name,
			Stage:          rs.stage,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		stats.TotalExecutions += internal.executionCount
	}

	return stats
}
