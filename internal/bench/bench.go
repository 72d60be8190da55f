package bench

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/san-kum/arraylist/internal/arraylist"
	"github.com/san-kum/arraylist/internal/metrics"
)

type Config struct {
	Capacity int
	Sizes    []int
	Repeats  int
}

// Measurement is the best of Repeats runs appending Size elements.
type Measurement struct {
	Size            int
	Elapsed         time.Duration
	NsPerOp         float64
	GrowthEvents    int
	Copies          int
	AmortizedCopies float64
	FinalCapacity   int
}

func Run(ctx context.Context, cfg Config) ([]Measurement, error) {
	if cfg.Repeats <= 0 {
		return nil, fmt.Errorf("bench: repeats must be positive, got %d", cfg.Repeats)
	}

	results := make([]Measurement, 0, len(cfg.Sizes))
	values := make([]string, 0)
	for _, size := range cfg.Sizes {
		if size <= 0 {
			return nil, fmt.Errorf("bench: size must be positive, got %d", size)
		}
		for len(values) < size {
			values = append(values, strconv.Itoa(len(values)))
		}

		var best Measurement
		for r := 0; r < cfg.Repeats; r++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			m, err := runOnce(cfg.Capacity, values[:size])
			if err != nil {
				return results, err
			}
			if r == 0 || m.Elapsed < best.Elapsed {
				best = m
			}
		}
		results = append(results, best)
	}

	return results, nil
}

func runOnce(capacity int, values []string) (Measurement, error) {
	list, err := newList(capacity)
	if err != nil {
		return Measurement{}, err
	}
	tracker := metrics.NewGrowthTracker(list.Cap())
	list.SetGrowthObserver(tracker)

	start := time.Now()
	for _, v := range values {
		list.Add(v)
	}
	elapsed := time.Since(start)

	n := len(values)
	return Measurement{
		Size:            n,
		Elapsed:         elapsed,
		NsPerOp:         float64(elapsed.Nanoseconds()) / float64(n),
		GrowthEvents:    tracker.Events(),
		Copies:          tracker.Copies(),
		AmortizedCopies: tracker.AmortizedCopies(n),
		FinalCapacity:   list.Cap(),
	}, nil
}

func newList(capacity int) (*arraylist.ArrayList[string], error) {
	if capacity == 0 {
		return arraylist.New[string](), nil
	}
	return arraylist.NewWithCapacity[string](capacity)
}
