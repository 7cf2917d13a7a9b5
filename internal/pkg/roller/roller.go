// Package roller provides dice rolling for randomized creature stats
package roller

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

//go:generate mockgen -destination=mock/mock.go -package=rollermock github.com/creatureforge/card-api/internal/pkg/roller Roller

// Roller rolls dice
type Roller interface {
	// Roll rolls count dice with the given number of sides and returns the total
	Roll(count, size int) (int, error)
}

// Toolkit implements Roller using the rpg-toolkit dice package
type Toolkit struct{}

// NewToolkit returns a roller backed by rpg-toolkit dice
func NewToolkit() *Toolkit {
	return &Toolkit{}
}

// Roll rolls count dice of the given size
func (r *Toolkit) Roll(count, size int) (int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, fmt.Errorf("failed to create roll %dd%d: %w", count, size, err)
	}
	return roll.GetValue(), nil
}

// Fixed implements Roller with a predetermined sequence of results for testing
type Fixed struct {
	mu      sync.Mutex
	results []int
	idx     int
}

// NewFixed returns a roller that yields the given results in order,
// repeating the last result once the sequence is exhausted.
func NewFixed(results ...int) *Fixed {
	return &Fixed{results: results}
}

// Roll returns the next predetermined result
func (r *Fixed) Roll(_, _ int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.results) == 0 {
		return 0, fmt.Errorf("fixed roller has no results configured")
	}
	result := r.results[r.idx]
	if r.idx < len(r.results)-1 {
		r.idx++
	}
	return result, nil
}
