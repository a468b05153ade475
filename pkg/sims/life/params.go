package life

import (
	"strconv"

	"life-ca/internal/core"
)

// Parameter keys understood by Engine.
const (
	ParamSize       = "size"
	ParamIntervalMs = "interval_ms"
	ParamRunning    = "running"
	ParamGeneration = "generation"
	ParamAlive      = "alive"
)

// Parameters reports the engine's tunables and counters.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam(ParamSize, "Grid size", e.Size()),
				intParam(ParamGeneration, "Generation", e.generation),
				intParam(ParamAlive, "Live cells", e.grid.Alive()),
			},
		},
		{
			Name: "Loop",
			Params: []core.Parameter{
				intParam(ParamIntervalMs, "Speed (ms)", e.intervalMs),
				boolParam(ParamRunning, "Running", e.running),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamRunning, Label: "Running", Type: core.ParamTypeBool},
		{
			Key: ParamIntervalMs, Label: "Speed (ms)", Type: core.ParamTypeInt,
			Step: IntervalStepMs, Min: MinIntervalMs, Max: MaxIntervalMs, HasMin: true, HasMax: true,
		},
		{
			Key: ParamSize, Label: "Grid size", Type: core.ParamTypeInt,
			Step: 1, Min: MinSize, Max: MaxSize, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter updates an integer tunable. Values are clamped to the
// parameter's domain.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamSize:
		e.SetSize(value)
	case ParamIntervalMs:
		e.SetIntervalMs(value)
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a boolean tunable.
func (e *Engine) SetBoolParameter(key string, value bool) bool {
	if key != ParamRunning {
		return false
	}
	e.SetRunning(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
