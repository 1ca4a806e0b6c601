package room

import (
	"sync"
	"time"

	"github.com/ugaemi/lawchase-server/internal/game"
	"github.com/ugaemi/lawchase-server/internal/session"
	"github.com/ugaemi/lawchase-server/internal/ws"
)

// Options configures every room a Manager creates.
type Options struct {
	Field             game.Playfield
	FrameInterval     time.Duration
	CountdownInterval time.Duration
}

// DefaultOptions paces frames at game.FrameRate and the countdown at one second.
func DefaultOptions() Options {
	return Options{
		Field:             game.DefaultPlayfield(),
		FrameInterval:     time.Second / game.FrameRate,
		CountdownInterval: time.Second,
	}
}

type command func(r *Room)

// Room is one client's cabinet. Its loop goroutine is the only code that
// touches the session; everything else goes through the command channel.
type Room struct {
	Code   string
	client *ws.Client
	opts   Options

	session   *session.Session
	countdown *time.Ticker

	cmds     chan command
	stopCh   chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// NewRoom creates a room for client. The loop does not run until StartLoop.
func NewRoom(code string, client *ws.Client, opts Options) *Room {
	r := &Room{
		Code:   code,
		client: client,
		opts:   opts,
		cmds:   make(chan command, 64),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	r.session = session.New(opts.Field, r)
	return r
}

// StartLoop starts the room's tick loop.
func (r *Room) StartLoop() {
	r.started = true
	go r.loop()
}

// Stop halts the loop, tears the session down and waits for the loop to exit.
func (r *Room) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	if r.started {
		<-r.done
	}
}

// loop drives the session from two independent tickers: frames at the frame
// rate and the round countdown once a second. They are never reconciled.
func (r *Room) loop() {
	frames := time.NewTicker(r.opts.FrameInterval)
	r.countdown = time.NewTicker(r.opts.CountdownInterval)
	defer func() {
		frames.Stop()
		r.countdown.Stop()
		r.session.Close()
		close(r.done)
	}()

	for {
		select {
		case <-r.stopCh:
			return
		case cmd := <-r.cmds:
			cmd(r)
		case <-frames.C:
			r.session.Frame()
		case <-r.countdown.C:
			r.session.Countdown()
		}
	}
}

func (r *Room) enqueue(cmd command) {
	select {
	case r.cmds <- cmd:
	case <-r.stopCh:
	}
}

// SelectVariant (re)starts the session with v.
func (r *Room) SelectVariant(v game.Variant) {
	r.enqueue(func(r *Room) { r.startSession(v) })
}

func (r *Room) startSession(v game.Variant) {
	if err := r.session.Start(v); err != nil {
		r.client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}
	// The countdown's first tick lands one full interval after the start.
	if r.countdown != nil {
		r.countdown.Reset(r.opts.CountdownInterval)
	}
}

func (r *Room) SetKeys(k game.KeyState) {
	r.enqueue(func(r *Room) { r.session.SetKeys(k) })
}

func (r *Room) PointerDown(p game.Vector2) {
	r.enqueue(func(r *Room) { r.session.PointerDown(p) })
}

func (r *Room) PointerMove(p game.Vector2) {
	r.enqueue(func(r *Room) { r.session.PointerMove(p) })
}

func (r *Room) PointerUp() {
	r.enqueue(func(r *Room) { r.session.PointerUp() })
}

func (r *Room) ActivateRecovery() {
	r.enqueue(func(r *Room) {
		if !r.session.ActivateRecovery() {
			r.client.SendMessage(ws.NewErrorMessage("recovery is not available"))
		}
	})
}

// Confirm acknowledges the ending banner; the session passes through
// Terminal and returns to the menu.
func (r *Room) Confirm() {
	r.enqueue(func(r *Room) {
		if !r.session.Confirm() {
			r.client.SendMessage(ws.NewErrorMessage("nothing to confirm"))
			return
		}
		r.session.NavigateToMenu()
	})
}

// ReturnToMenu aborts whatever is running and shows the menu.
func (r *Room) ReturnToMenu() {
	r.enqueue(func(r *Room) { r.session.NavigateToMenu() })
}

// SendMenu shows the menu without touching the session.
func (r *Room) SendMenu() {
	r.enqueue(func(r *Room) { r.sendMenu() })
}
