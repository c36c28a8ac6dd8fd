package player

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// Observer receives every event together with the board state after
// the event has been applied.
type Observer interface {
	OnEvent(ev step.Event, board *Board)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ev step.Event, board *Board)

func (f ObserverFunc) OnEvent(ev step.Event, board *Board) { f(ev, board) }

// Player replays a producer at a fixed pace, dispatching each event to
// its observers as it lands on the board.
type Player struct {
	delay     time.Duration
	observers []Observer
}

func New(delay time.Duration) *Player {
	return &Player{
		delay:     delay,
		observers: make([]Observer, 0),
	}
}

func (p *Player) AddObserver(o Observer) { p.observers = append(p.observers, o) }

// Run pulls the producer to exhaustion, pausing delay between events.
// Cancellation is honored between events, never inside one. A stream
// that ends without a terminal event yields step.ErrTruncated; the
// partial summary is still returned.
func (p *Player) Run(ctx context.Context, prod step.Producer, values []float64) (*Summary, error) {
	if prod == nil {
		return nil, fmt.Errorf("player: nil producer")
	}

	stepper := NewStepper(prod, values)
	defer stepper.Close()

	summary := NewSummary(stepper.Board())

	for {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		ev, ok := stepper.Step()
		if !ok {
			break
		}
		summary.Observe(ev)

		for _, o := range p.observers {
			o.OnEvent(ev, stepper.Board())
		}

		if p.delay > 0 && !ev.Kind().Terminal() {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(p.delay):
			}
		}
	}

	if !stepper.Board().Done() {
		return summary, step.ErrTruncated
	}
	return summary, nil
}

// RunWithCallback replays the producer without pacing, handing each
// event to callback. Returning false stops the replay cleanly.
func (p *Player) RunWithCallback(ctx context.Context, prod step.Producer, values []float64, callback func(ev step.Event, board *Board) bool) error {
	if prod == nil {
		return fmt.Errorf("player: nil producer")
	}

	stepper := NewStepper(prod, values)
	defer stepper.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev, ok := stepper.Step()
		if !ok {
			return nil
		}
		if !callback(ev, stepper.Board()) {
			return nil
		}
	}
}
