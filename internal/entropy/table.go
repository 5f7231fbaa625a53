package entropy

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Table holds the precomputed pattern code of every (allowed guess, answer)
// pair of one word list. It is read-only after BuildTable returns.
type Table struct {
	list    *words.List
	answers int
	codes   []uint16
}

// BuildTable computes the table using up to workers goroutines (≤ 0 means GOMAXPROCS).
// Memory is NumAllowed × NumAnswers × 2 bytes.
func BuildTable(ctx context.Context, list *words.List, workers int) (*Table, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	t := &Table{
		list:    list,
		answers: list.NumAnswers(),
		codes:   make([]uint16, list.NumAllowed()*list.NumAnswers()),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for gi := 0; gi < list.NumAllowed(); gi++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			guess := list.Guess(gi)
			row := t.codes[gi*t.answers : (gi+1)*t.answers]
			for ai := range row {
				row[ai] = uint16(game.ScoreCode(guess, list.Answer(ai)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the word list the table was built for.
func (t *Table) List() *words.List { return t.list }

// Code returns the pattern code of allowed guess gi against answer ai.
func (t *Table) Code(gi, ai int) uint32 {
	return uint32(t.codes[gi*t.answers+ai])
}
