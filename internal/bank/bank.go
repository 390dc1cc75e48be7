// Package bank holds the static question content, bucketed by difficulty
// level. Content is seeded at process start and never mutated; the bank is
// safe for concurrent reads.
package bank

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Level bounds for the adaptive controller. Levels outside this range are
// never served; the controller clamps to it on every transition.
const (
	MinLevel = 1
	MaxLevel = 3
)

// Question is a single multiple-choice item. Immutable once seeded.
type Question struct {
	Text    string
	Options []string
	Correct string
}

// ConfigError indicates the bank content is unusable. It is fatal at
// startup and never recoverable at runtime.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "question bank misconfigured: " + e.Reason
}

// Bank is a lookup from difficulty level to its question set.
type Bank struct {
	byLevel map[int][]Question
}

// New builds a Bank from level-keyed question sets and validates it.
func New(byLevel map[int][]Question) (*Bank, error) {
	b := &Bank{byLevel: byLevel}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Default returns the built-in Python data types lesson bank.
func Default() *Bank {
	b, err := New(seedQuestions())
	if err != nil {
		// The seed is compiled in; failing validation is a programming error.
		panic(err)
	}
	return b
}

// validate checks the invariants every level set must hold. The minimum
// level must be authored because it is the fallback for every other level.
func (b *Bank) validate() error {
	if len(b.byLevel[MinLevel]) == 0 {
		return &ConfigError{Reason: fmt.Sprintf("no questions at level %d", MinLevel)}
	}
	for level, qs := range b.byLevel {
		for _, q := range qs {
			if len(q.Options) < 2 {
				return &ConfigError{Reason: fmt.Sprintf("level %d question %q has fewer than two options", level, q.Text)}
			}
			if !slices.Contains(q.Options, q.Correct) {
				return &ConfigError{Reason: fmt.Sprintf("level %d question %q: correct option %q not in options", level, q.Text, q.Correct)}
			}
		}
	}
	return nil
}

// QuestionsFor returns the question set for level, falling back to
// MinLevel's set when the level has no authored questions.
func (b *Bank) QuestionsFor(level int) []Question {
	if qs := b.byLevel[level]; len(qs) > 0 {
		return qs
	}
	return b.byLevel[MinLevel]
}

// Pick selects a question uniformly at random from the level's set.
func (b *Bank) Pick(level int) Question {
	qs := b.QuestionsFor(level)
	return qs[rand.IntN(len(qs))]
}

// Levels returns the authored levels in ascending order.
func (b *Bank) Levels() []int {
	levels := make([]int, 0, len(b.byLevel))
	for l := range b.byLevel {
		levels = append(levels, l)
	}
	slices.Sort(levels)
	return levels
}
