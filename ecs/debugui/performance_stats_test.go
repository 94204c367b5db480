package debugui_test

import (
	"testing"

	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/ecs/debugui"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsAverage(t *testing.T) {
	stats := debugui.NewPerformanceStats(4)
	assert.Equal(t, float32(0), stats.AverageMillis())

	stats.Record(0.010)
	stats.Record(0.020)
	assert.InDelta(t, 15, stats.AverageMillis(), 1e-4)

	// The oldest samples roll off once the history is full.
	for range 4 {
		stats.Record(0.005)
	}
	assert.InDelta(t, 5, stats.AverageMillis(), 1e-4)
}

func TestFrameRecorder(t *testing.T) {
	storage := newStorage()
	scheduler := ecs.NewScheduler(storage)
	stats := debugui.NewPerformanceStats(8)
	scheduler.Register(&debugui.FrameRecorder{Stats: stats})

	scheduler.Once(0.016)
	scheduler.Once(0.016)

	assert.InDelta(t, 16, stats.AverageMillis(), 1e-3)
}
