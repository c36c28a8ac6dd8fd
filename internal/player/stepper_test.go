package player

import (
	"testing"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

func eventsProducer(evs ...step.Event) step.Producer {
	return func(yield func(step.Event) bool) {
		for _, ev := range evs {
			if !yield(ev) {
				return
			}
		}
	}
}

func TestStepperPullsOneEventAtATime(t *testing.T) {
	yielded := 0
	prod := step.Producer(func(yield func(step.Event) bool) {
		for i := 0; i < 5; i++ {
			yielded++
			if !yield(step.Current{Index: i}) {
				return
			}
		}
	})

	s := NewStepper(prod, []float64{1, 2, 3, 4, 5})
	defer s.Close()

	if _, ok := s.Step(); !ok {
		t.Fatal("expected first step to succeed")
	}
	if yielded != 1 {
		t.Errorf("expected producer to run one yield ahead, got %d", yielded)
	}

	if _, ok := s.Step(); !ok {
		t.Fatal("expected second step to succeed")
	}
	if yielded != 2 {
		t.Errorf("expected two yields after two steps, got %d", yielded)
	}
}

func TestStepperAppliesEventsToBoard(t *testing.T) {
	prod := eventsProducer(
		step.Compare{I: 0, J: 1},
		step.Swap{I: 0, J: 1, Array: []float64{1, 2}},
		step.Complete{Lo: 0, Hi: 1, Array: []float64{1, 2}},
	)

	s := NewStepper(prod, []float64{2, 1})
	defer s.Close()

	s.Step()
	if len(s.Board().Active) != 2 {
		t.Errorf("expected compare marks on board, got %v", s.Board().Active)
	}

	s.Step()
	if s.Board().Values[0] != 1 {
		t.Errorf("expected swap snapshot on board, got %v", s.Board().Values)
	}

	s.Step()
	if !s.Board().Done() {
		t.Error("expected board done after terminal event")
	}
}

func TestStepperExhaustion(t *testing.T) {
	s := NewStepper(eventsProducer(step.Complete{}), nil)
	defer s.Close()

	if _, ok := s.Step(); !ok {
		t.Fatal("expected one event")
	}
	if _, ok := s.Step(); ok {
		t.Error("expected exhaustion after last event")
	}
	if !s.Done() {
		t.Error("expected stepper done after exhaustion")
	}

	// further calls stay exhausted
	if _, ok := s.Step(); ok {
		t.Error("expected repeated steps to keep reporting exhaustion")
	}
}

func TestStepperCloseAbandonsProducer(t *testing.T) {
	abandoned := false
	prod := step.Producer(func(yield func(step.Event) bool) {
		for i := 0; i < 100; i++ {
			if !yield(step.Current{Index: i}) {
				abandoned = true
				return
			}
		}
	})

	s := NewStepper(prod, []float64{1})
	s.Step()
	s.Close()

	if !abandoned {
		t.Error("expected close to signal the producer through yield")
	}
	if _, ok := s.Step(); ok {
		t.Error("expected steps after close to report exhaustion")
	}

	s.Close() // safe to repeat
}
