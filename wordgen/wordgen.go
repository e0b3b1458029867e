// Package wordgen enumerates every word a board supports. It does a
// depth-first walk from each starting cell, pruned by lexicon prefix
// queries, with one worker per starting cell.
package wordgen

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/lexaholic/wordgrid/board"
	"github.com/lexaholic/wordgrid/lexicon"
)

// AllWords returns every lexicon word of length maxLen or shorter that is
// traceable on b, sorted and deduplicated.
func AllWords(ctx context.Context, b *board.Board, lex lexicon.Lexicon, maxLen int) ([]string, error) {
	var mu sync.Mutex
	found := []string{}

	g, ctx := errgroup.WithContext(ctx)
	for cell := 0; cell < b.NumCells(); cell++ {
		cell := cell
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w := &walker{b: b, lex: lex, maxLen: maxLen,
				visited: make([]bool, b.NumCells())}
			w.walk(cell, "")
			mu.Lock()
			found = append(found, w.found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	found = lo.Uniq(found)
	sort.Strings(found)
	log.Debug().Int("words", len(found)).Int("maxLen", maxLen).
		Msg("enumerated board words")
	return found, nil
}

type walker struct {
	b       *board.Board
	lex     lexicon.Lexicon
	maxLen  int
	visited []bool
	found   []string
}

func (w *walker) walk(cell int, prefix string) {
	prefix += w.b.CellLetters(cell)
	if len(prefix) > w.maxLen {
		return
	}
	if !w.lex.HasPrefix(prefix) {
		return
	}
	if len(prefix) >= lexicon.MinWordLength && w.lex.HasWord(prefix) {
		w.found = append(w.found, prefix)
	}
	w.visited[cell] = true
	for _, n := range w.b.Neighbors(cell) {
		if !w.visited[n] {
			w.walk(n, prefix)
		}
	}
	w.visited[cell] = false
}
