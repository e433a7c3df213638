package constants

import "time"

const (
	// Craving intervention timings. The breath cycle is split into
	// inhale [0, InhaleEnd), hold [InhaleEnd, HoldEnd) and exhale [HoldEnd, BreathCycle).
	BreathingDuration = 30 * time.Second
	BreathCycle       = 14 * time.Second
	InhaleEnd         = 4 * time.Second
	HoldEnd           = 8 * time.Second
	BreathTick        = 100 * time.Millisecond
	CountdownTick     = time.Second

	// GroundingSteps is the number of 5-4-3-2-1 grounding prompts.
	GroundingSteps = 5
)
