package player_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DanielRosa74/algo-visualizer/internal/algo"
	"github.com/DanielRosa74/algo-visualizer/internal/player"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

func emit(evs ...step.Event) step.Producer {
	return func(yield func(step.Event) bool) {
		for _, ev := range evs {
			if !yield(ev) {
				return
			}
		}
	}
}

var _ = Describe("Player", func() {
	Describe("Run", func() {
		It("plays a stream to completion and summarizes it", func() {
			p := player.New(0)
			input := []float64{2, 1}

			summary, err := p.Run(context.Background(), algo.BubbleSort(input), input)

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Outcome()).To(Equal(player.OutcomeComplete))
			Expect(summary.Events).To(Equal(3))
			Expect(summary.Comparisons).To(Equal(1))
			Expect(summary.Moves).To(Equal(1))
			Expect(summary.Counts[step.KindSwap]).To(Equal(1))
			Expect(summary.Board.Values).To(Equal([]float64{1, 2}))
		})

		It("dispatches events to observers with the board already updated", func() {
			p := player.New(0)
			var afterSwap []float64
			p.AddObserver(player.ObserverFunc(func(ev step.Event, b *player.Board) {
				if ev.Kind() == step.KindSwap {
					afterSwap = append([]float64(nil), b.Values...)
				}
			}))

			input := []float64{2, 1}
			_, err := p.Run(context.Background(), algo.BubbleSort(input), input)

			Expect(err).NotTo(HaveOccurred())
			Expect(afterSwap).To(Equal([]float64{1, 2}))
		})

		It("keeps observer dispatch in stream order", func() {
			p := player.New(0)
			var kinds []step.Kind
			p.AddObserver(player.ObserverFunc(func(ev step.Event, b *player.Board) {
				kinds = append(kinds, ev.Kind())
			}))

			input := []float64{2, 1}
			_, err := p.Run(context.Background(), algo.BubbleSort(input), input)

			Expect(err).NotTo(HaveOccurred())
			Expect(kinds).To(Equal([]step.Kind{
				step.KindCompare, step.KindSwap, step.KindComplete,
			}))
		})

		It("keeps a found outcome through the trailing completion event", func() {
			p := player.New(0)
			prod := emit(
				step.Visit{Index: 0, Value: 1, Depth: 0},
				step.Found{Index: 0, Value: 1},
				step.Complete{HasTarget: true, Found: true, Visited: []float64{1}},
			)

			summary, err := p.Run(context.Background(), prod, []float64{1})

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Outcome()).To(Equal(player.OutcomeFound))
			Expect(summary.Board.Found).To(Equal(0))
		})

		It("reports a stream that ends without a terminal event", func() {
			p := player.New(0)
			prod := emit(step.Compare{I: 0, J: 1})

			summary, err := p.Run(context.Background(), prod, []float64{2, 1})

			Expect(err).To(MatchError(step.ErrTruncated))
			Expect(summary.Events).To(Equal(1))
			Expect(summary.Outcome()).To(Equal(player.OutcomeRunning))
		})

		It("rejects a nil producer", func() {
			p := player.New(0)

			_, err := p.Run(context.Background(), nil, []float64{1})

			Expect(err).To(HaveOccurred())
		})

		Context("pacing", func() {
			It("pauses between events", func() {
				delay := 15 * time.Millisecond
				p := player.New(delay)
				prod := emit(
					step.Compare{I: 0, J: 1},
					step.Compare{I: 1, J: 2},
					step.Complete{},
				)

				start := time.Now()
				_, err := p.Run(context.Background(), prod, []float64{1, 2, 3})

				Expect(err).NotTo(HaveOccurred())
				Expect(time.Since(start)).To(BeNumerically(">=", 2*delay))
			})

			It("does not pause after a terminal event", func() {
				p := player.New(500 * time.Millisecond)
				prod := emit(step.Complete{})

				start := time.Now()
				_, err := p.Run(context.Background(), prod, []float64{1})

				Expect(err).NotTo(HaveOccurred())
				Expect(time.Since(start)).To(BeNumerically("<", 250*time.Millisecond))
			})
		})

		Context("cancellation", func() {
			It("stops between events", func() {
				p := player.New(0)
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()

				seen := 0
				p.AddObserver(player.ObserverFunc(func(ev step.Event, b *player.Board) {
					seen++
					cancel()
				}))

				many := make([]step.Event, 100)
				for i := range many {
					many[i] = step.Current{Index: i}
				}

				summary, err := p.Run(ctx, emit(many...), []float64{1})

				Expect(err).To(MatchError(context.Canceled))
				Expect(seen).To(Equal(1))
				Expect(summary.Events).To(Equal(1))
			})

			It("interrupts the pacing wait", func() {
				p := player.New(10 * time.Second)
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
				defer cancel()

				prod := emit(step.Compare{I: 0, J: 1}, step.Complete{})

				start := time.Now()
				_, err := p.Run(ctx, prod, []float64{2, 1})

				Expect(err).To(MatchError(context.DeadlineExceeded))
				Expect(time.Since(start)).To(BeNumerically("<", 2*time.Second))
			})
		})
	})

	Describe("RunWithCallback", func() {
		It("stops cleanly when the callback declines", func() {
			p := player.New(0)
			abandoned := false
			prod := step.Producer(func(yield func(step.Event) bool) {
				for i := 0; i < 50; i++ {
					if !yield(step.Current{Index: i}) {
						abandoned = true
						return
					}
				}
			})

			count := 0
			err := p.RunWithCallback(context.Background(), prod, []float64{1}, func(ev step.Event, b *player.Board) bool {
				count++
				return count < 2
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
			Expect(abandoned).To(BeTrue())
		})

		It("replays the whole stream when the callback keeps accepting", func() {
			p := player.New(0)
			input := []float64{2, 1}

			count := 0
			var last *player.Board
			err := p.RunWithCallback(context.Background(), algo.BubbleSort(input), input, func(ev step.Event, b *player.Board) bool {
				count++
				last = b
				return true
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
			Expect(last.Done()).To(BeTrue())
		})
	})
})
