package trace

// TraceLevel controls the verbosity of annealing-walk tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps captures every annealing step decision.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSteps: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// WalkTrace collects step records during an annealing walk.
type WalkTrace struct {
	Config TraceConfig
	Steps  []StepRecord
}

// NewWalkTrace creates a WalkTrace ready for recording.
func NewWalkTrace(config TraceConfig) *WalkTrace {
	return &WalkTrace{
		Config: config,
		Steps:  make([]StepRecord, 0),
	}
}

// RecordStep appends an annealing step record.
func (wt *WalkTrace) RecordStep(record StepRecord) {
	wt.Steps = append(wt.Steps, record)
}
