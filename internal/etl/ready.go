package etl

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Probe is a lightweight connectivity check against a backing store.
type Probe func(ctx context.Context) error

// Gate polls a store at a fixed interval until it accepts connections. With
// MaxAttempts zero it polls forever: the pipeline cannot proceed without both
// stores and the owning process is externally killable.
type Gate struct {
	Interval    time.Duration
	MaxAttempts int

	// Sleep is swapped for a recorder in tests.
	Sleep func(time.Duration)
}

func NewGate(interval time.Duration) *Gate {
	return &Gate{
		Interval: interval,
		Sleep:    time.Sleep,
	}
}

func (g *Gate) Await(ctx context.Context, name string, probe Probe) error {
	for attempt := 1; ; attempt++ {
		err := probe(ctx)
		if err == nil {
			log.Printf("%s is ready", name)
			return nil
		}

		log.Printf("Waiting for %s: %v", name, err)

		if g.MaxAttempts > 0 && attempt >= g.MaxAttempts {
			return fmt.Errorf("%s not ready after %d attempts: %w", name, attempt, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		g.Sleep(g.Interval)
	}
}
