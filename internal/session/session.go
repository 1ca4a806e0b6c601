// Package session runs one player's round: it owns every mutable entity, moves
// through Setup -> Playing -> Ending/SpecialRecovery -> Terminal, and decides
// the single outcome of the round.
//
// A Session is not safe for concurrent use; it is meant to be driven from one
// goroutine.
package session

import (
	"github.com/google/uuid"

	"github.com/ugaemi/lawchase-server/internal/game"
)

type Session struct {
	field game.Playfield
	sink  Sink

	id      string
	variant game.Variant
	policy  game.Policy
	// Policies are kept per variant and reused on replay; Setup resets them.
	policies map[game.Variant]game.Policy

	player  *game.Player
	pursuer *game.Pursuer
	input   *game.Input
	clock   *game.Clock
	timers  game.Timers

	phase       game.Phase
	outcome     game.Outcome
	active      bool
	promptShown bool
}

// New creates an idle session. Nothing runs until Start.
func New(field game.Playfield, sink Sink) *Session {
	if sink == nil {
		sink = NopSink{}
	}
	return &Session{
		field:    field,
		sink:     sink,
		policies: make(map[game.Variant]game.Policy),
		player:   game.NewPlayer(field),
		pursuer:  game.NewPursuer(field),
		input:    game.NewInput(field),
		clock:    game.NewClock(),
		phase:    game.PhaseSetup,
	}
}

// Start (re)enters the session with the given variant. Every mutable field is
// reset and pending timers from the previous round are cancelled.
func (s *Session) Start(v game.Variant) error {
	policy, ok := s.policies[v]
	if !ok {
		p, err := game.NewPolicy(v)
		if err != nil {
			return err
		}
		s.policies[v] = p
		policy = p
	}

	s.timers.CancelAll()
	s.id = uuid.NewString()
	s.variant = v
	s.policy = policy
	s.phase = game.PhaseSetup
	s.outcome = game.OutcomeNone
	s.promptShown = false

	s.player.Reset(s.field)
	s.pursuer.Reset(s.field)
	s.input.Reset(s.field)
	s.clock.Reset()
	s.policy.Setup(s.state())

	s.phase = game.PhasePlaying
	s.active = true
	s.emit(EventStarted)
	return nil
}

// Frame runs one rendered frame with the fixed nominal step.
func (s *Session) Frame() {
	if !s.active {
		return
	}
	dt := s.clock.AdvanceFrame()
	s.timers.Advance(dt)
	if s.phase == game.PhasePlaying {
		s.step(dt)
	}
	s.sink.Snapshot(s.Snapshot())
}

func (s *Session) step(dt float64) {
	st := s.state()

	game.MovePlayer(s.player, s.input.Direction(), dt, s.field)
	s.policy.OnFrame(st, dt)
	game.SteerPursuer(s.pursuer, s.player.Position, dt)

	if s.pursuer.Active && game.Collides(s.player.Position, s.pursuer.Position) {
		verdict := s.policy.OnCollision(st)
		if verdict == game.VerdictRecovery {
			s.enterRecovery()
		}
		// Emitted after the variant has applied the contact.
		s.emit(EventCollision)
		if verdict == game.VerdictRecovery {
			return
		}
	}

	if s.policy.Lost(st) {
		s.end(game.OutcomeLost)
	}
}

// Countdown takes one second off the round. Reaching zero while playing wins.
func (s *Session) Countdown() {
	if !s.active || s.phase != game.PhasePlaying {
		return
	}
	if _, expired := s.clock.Countdown(); expired {
		s.end(game.OutcomeWon)
	}
}

func (s *Session) enterRecovery() {
	s.phase = game.PhaseSpecialRecovery
	s.input.Reset(s.field)
	s.timers.After(game.RecoveryPromptDelay, func() {
		if s.phase != game.PhaseSpecialRecovery {
			return
		}
		s.promptShown = true
		s.emit(EventRecoveryPrompt)
	})
}

// end records the round's outcome. Only the first caller wins.
func (s *Session) end(outcome game.Outcome) {
	if s.phase != game.PhasePlaying && s.phase != game.PhaseSpecialRecovery {
		return
	}
	s.outcome = outcome
	if outcome == game.OutcomeWon {
		s.phase = game.PhaseEndingWon
	} else {
		s.phase = game.PhaseEndingLost
		s.player.Alive = false
	}
	s.input.Reset(s.field)
	s.emit(EventEnding)
}

// ActivateRecovery is the one action offered in SpecialRecovery. It is
// accepted once the recovery prompt is showing.
func (s *Session) ActivateRecovery() bool {
	if !s.active || s.phase != game.PhaseSpecialRecovery || !s.promptShown {
		return false
	}
	r, ok := s.policy.(game.Recoverer)
	if !ok || !r.Recover(s.state()) {
		return false
	}
	s.end(game.OutcomeWon)
	return true
}

// Confirm acknowledges the ending banner and moves to Terminal.
func (s *Session) Confirm() bool {
	if !s.active || !s.phase.IsEnding() {
		return false
	}
	s.phase = game.PhaseTerminal
	s.emit(EventTerminal)
	return true
}

// NavigateToMenu is the session's only exit. It halts ticking and cancels
// pending timers; it may be called from any phase.
func (s *Session) NavigateToMenu() {
	s.Close()
	s.emit(EventMenu)
}

// Close stops the session without notifying the sink.
func (s *Session) Close() {
	s.timers.CancelAll()
	s.input.Reset(s.field)
	s.active = false
}

// SetKeys replaces the keyboard flags.
func (s *Session) SetKeys(k game.KeyState) {
	if s.accepting() {
		s.input.Keys = k
	}
}

// PointerDown presses the joystick if p lands on it.
func (s *Session) PointerDown(p game.Vector2) bool {
	if !s.accepting() || !p.Finite() {
		return false
	}
	return s.input.Joystick.Press(s.field.ClampScreen(p))
}

// PointerMove drags the joystick.
func (s *Session) PointerMove(p game.Vector2) {
	if !s.accepting() || !p.Finite() {
		return
	}
	s.input.Joystick.Drag(s.field.ClampScreen(p))
}

func (s *Session) PointerUp() {
	s.input.Joystick.Release()
}

func (s *Session) accepting() bool {
	return s.active && s.phase == game.PhasePlaying
}

func (s *Session) state() *game.State {
	return &game.State{Player: s.player, Pursuer: s.pursuer, Field: s.field}
}

// Score derives the current score from the variant's difficulty state.
func (s *Session) Score() float64 {
	if s.policy == nil {
		return 0
	}
	return s.policy.Score(s.state())
}

func (s *Session) ID() string              { return s.id }
func (s *Session) Variant() game.Variant   { return s.variant }
func (s *Session) Policy() game.Policy     { return s.policy }
func (s *Session) Phase() game.Phase       { return s.phase }
func (s *Session) Outcome() game.Outcome   { return s.outcome }
func (s *Session) Active() bool            { return s.active }
func (s *Session) Field() game.Playfield   { return s.field }
func (s *Session) TimeRemaining() int      { return s.clock.TimeRemaining }
func (s *Session) Player() game.Player     { return *s.player }
func (s *Session) Pursuer() game.Pursuer   { return *s.pursuer }
func (s *Session) Direction() game.Vector2 { return s.input.Direction() }
func (s *Session) PendingTimers() int      { return s.timers.Pending() }

// Snapshot returns the current read-only view.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.id,
		Variant:   s.variant,
		Frame:     s.clock.Frames,
		Player: PlayerView{
			Position: s.player.Position,
			Scale:    s.player.Scale,
			Alive:    s.player.Alive,
		},
		Pursuer: PursuerView{
			Position: s.pursuer.Position,
			Scale:    game.PursuerScale,
			Active:   s.pursuer.Active,
		},
		TimeRemaining: s.clock.TimeRemaining,
		Score:         s.Score(),
		Phase:         s.phase,
	}
	if w, ok := s.policy.(game.Warner); ok && s.phase == game.PhasePlaying {
		snap.Warning = w.Warning(s.state())
	}
	return snap
}

func (s *Session) emit(t EventType) {
	ev := Event{
		Type:      t,
		SessionID: s.id,
		Variant:   s.variant,
		Phase:     s.phase,
		Score:     s.Score(),
	}
	if t == EventEnding {
		ev.Outcome = s.outcome
	}
	s.sink.Event(ev)
}
