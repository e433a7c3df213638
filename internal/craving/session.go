// Package craving implements the guided craving intervention and the
// append-only craving log.
//
// A Session moves through Breathing, Grounding, Journal, Actions and
// Complete in that order and never moves backward. A session cannot end as
// "gave in"; relapses are recorded separately through the streak tracker.
package craving

import (
	"errors"
	"sync"
	"time"

	"github.com/julianstephens/reboot/internal/constants"
)

var (
	ErrNotOpen             = errors.New("craving session is not open")
	ErrFinished            = errors.New("craving session already finished")
	ErrBreathingInProgress = errors.New("breathing exercise is still running")
	ErrWrongPhase          = errors.New("action is not available in the current phase")
)

type Phase int

const (
	PhaseBreathing Phase = iota
	PhaseGrounding
	PhaseJournal
	PhaseActions
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseBreathing:
		return "breathing"
	case PhaseGrounding:
		return "grounding"
	case PhaseJournal:
		return "journal"
	case PhaseActions:
		return "actions"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

type BreathPhase int

const (
	BreathInhale BreathPhase = iota
	BreathHold
	BreathExhale
)

func (b BreathPhase) String() string {
	switch b {
	case BreathInhale:
		return "Inhale"
	case BreathHold:
		return "Hold"
	default:
		return "Exhale"
	}
}

// BreathPhaseAt maps wall-clock time onto the 4-4-6 breathing cycle. The
// cycle is anchored to the Unix epoch, not to the session start.
func BreathPhaseAt(now time.Time) BreathPhase {
	pos := time.Duration(now.UnixMilli()%constants.BreathCycle.Milliseconds()) * time.Millisecond
	if pos < 0 {
		pos += constants.BreathCycle
	}
	switch {
	case pos < constants.InhaleEnd:
		return BreathInhale
	case pos < constants.HoldEnd:
		return BreathHold
	default:
		return BreathExhale
	}
}

// GroundingStep is one prompt of the 5-4-3-2-1 exercise.
type GroundingStep struct {
	Count int
	Sense string
}

var GroundingSteps = [constants.GroundingSteps]GroundingStep{
	{Count: 5, Sense: "things you can SEE"},
	{Count: 4, Sense: "things you can TOUCH"},
	{Count: 3, Sense: "things you can HEAR"},
	{Count: 2, Sense: "things you can SMELL"},
	{Count: 1, Sense: "thing you can TASTE"},
}

// Outcome is delivered to the completion callback exactly once per
// finished session.
type Outcome struct {
	Overcame bool
	Notes    string
}

// Snapshot is a copy of a session's observable state.
type Snapshot struct {
	Open      bool
	Finished  bool
	Phase     Phase
	Remaining int // whole seconds left in the breathing countdown
	Breath    BreathPhase
	Step      int // grounding step index, 0-4
	Journal   string
}

// CanAdvance reports whether Advance would be accepted.
func (s Snapshot) CanAdvance() bool {
	if !s.Open || s.Finished {
		return false
	}
	return s.Phase != PhaseBreathing || s.Remaining == 0
}

// Grounding returns the current grounding prompt.
func (s Snapshot) Grounding() GroundingStep {
	return GroundingSteps[s.Step]
}

// Session is the transient state of one craving intervention. It is safe
// for concurrent use; the completion callback is invoked without the lock
// held.
type Session struct {
	mu         sync.Mutex
	open       bool
	finished   bool
	phase      Phase
	startedAt  time.Time
	remaining  int
	breath     BreathPhase
	step       int
	journal    string
	breathDone chan struct{}
	onComplete func(Outcome)
}

func NewSession(onComplete func(Outcome)) *Session {
	return &Session{onComplete: onComplete}
}

// Open resets the session to the start of the breathing phase. Any session
// already in progress is discarded without completing.
func (s *Session) Open(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.endBreathing()
	s.open = true
	s.finished = false
	s.phase = PhaseBreathing
	s.startedAt = now
	s.remaining = int(constants.BreathingDuration / time.Second)
	s.breath = BreathPhaseAt(now)
	s.step = 0
	s.journal = ""
	s.breathDone = make(chan struct{})
	return s.snapshot()
}

// Close discards the session. The completion callback is not invoked.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.endBreathing()
	s.open = false
	s.finished = false
	s.phase = PhaseBreathing
	s.step = 0
	s.journal = ""
}

// BreathingDone is closed when the current session leaves the breathing
// phase or is closed.
func (s *Session) BreathingDone() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.breathDone == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return s.breathDone
}

// endBreathing must be called with mu held.
func (s *Session) endBreathing() {
	if s.breathDone == nil {
		return
	}
	select {
	case <-s.breathDone:
	default:
		close(s.breathDone)
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Open:      s.open,
		Finished:  s.finished,
		Phase:     s.phase,
		Remaining: s.remaining,
		Breath:    s.breath,
		Step:      s.step,
		Journal:   s.journal,
	}
}

// TickBreath updates the breath sub-phase. It has no effect outside the
// breathing phase.
func (s *Session) TickBreath(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open && s.phase == PhaseBreathing {
		s.breath = BreathPhaseAt(now)
	}
	return s.snapshot()
}

// TickCountdown updates the breathing countdown from the time elapsed since
// Open. The countdown never goes below zero.
func (s *Session) TickCountdown(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open && s.phase == PhaseBreathing {
		s.updateRemaining(now)
	}
	return s.snapshot()
}

// Tick applies both tickers' updates at once.
func (s *Session) Tick(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open && s.phase == PhaseBreathing {
		s.breath = BreathPhaseAt(now)
		s.updateRemaining(now)
	}
	return s.snapshot()
}

func (s *Session) updateRemaining(now time.Time) {
	elapsed := int(now.Sub(s.startedAt) / time.Second)
	remaining := int(constants.BreathingDuration/time.Second) - elapsed
	if remaining < 0 {
		remaining = 0
	}
	if remaining < s.remaining {
		s.remaining = remaining
	}
}

// Advance moves to the next phase or grounding step. In the complete phase
// it finishes the session as overcome.
func (s *Session) Advance(now time.Time) (Snapshot, error) {
	s.mu.Lock()
	if err := s.usable(); err != nil {
		snap := s.snapshot()
		s.mu.Unlock()
		return snap, err
	}

	switch s.phase {
	case PhaseBreathing:
		s.updateRemaining(now)
		if s.remaining > 0 {
			snap := s.snapshot()
			s.mu.Unlock()
			return snap, ErrBreathingInProgress
		}
		s.endBreathing()
		s.phase = PhaseGrounding
		s.step = 0
	case PhaseGrounding:
		if s.step < len(GroundingSteps)-1 {
			s.step++
		} else {
			s.phase = PhaseJournal
		}
	case PhaseJournal:
		s.phase = PhaseActions
	case PhaseActions:
		s.phase = PhaseComplete
	case PhaseComplete:
		return s.finish()
	}

	snap := s.snapshot()
	s.mu.Unlock()
	return snap, nil
}

// SetJournal replaces the journal draft.
func (s *Session) SetJournal(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.usable(); err != nil {
		return err
	}
	if s.phase != PhaseJournal {
		return ErrWrongPhase
	}
	s.journal = text
	return nil
}

// Continue leaves the journal phase keeping the draft.
func (s *Session) Continue() (Snapshot, error) {
	return s.leaveJournal()
}

// Skip leaves the journal phase. The draft, if any, is kept.
func (s *Session) Skip() (Snapshot, error) {
	return s.leaveJournal()
}

func (s *Session) leaveJournal() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.usable(); err != nil {
		return s.snapshot(), err
	}
	if s.phase != PhaseJournal {
		return s.snapshot(), ErrWrongPhase
	}
	s.phase = PhaseActions
	return s.snapshot(), nil
}

// RideWave finishes the session from the action menu as overcome, with the
// journal draft as notes.
func (s *Session) RideWave() (Snapshot, error) {
	s.mu.Lock()
	if err := s.usable(); err != nil {
		snap := s.snapshot()
		s.mu.Unlock()
		return snap, err
	}
	if s.phase != PhaseActions {
		snap := s.snapshot()
		s.mu.Unlock()
		return snap, ErrWrongPhase
	}
	return s.finish()
}

// finish must be called with mu held; it releases the lock.
func (s *Session) finish() (Snapshot, error) {
	s.finished = true
	s.phase = PhaseComplete
	outcome := Outcome{Overcame: true, Notes: s.journal}
	snap := s.snapshot()
	cb := s.onComplete
	s.mu.Unlock()

	if cb != nil {
		cb(outcome)
	}
	return snap, nil
}

func (s *Session) usable() error {
	if !s.open {
		return ErrNotOpen
	}
	if s.finished {
		return ErrFinished
	}
	return nil
}
