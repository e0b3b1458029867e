// Package board implements the letter grid and the path-legality rules for
// words on it. A word is legal if it can be traced through adjacent cells
// (all eight directions) without reusing a cell.
package board

import (
	"errors"
	"fmt"
	"strings"
)

type Board struct {
	// letters holds the grid row-major, lowercased. A 'q' cell stands
	// for the face "qu".
	letters []byte
	dim     int
}

var errBadRows = errors.New("board rows must be non-empty, square, and all letters")

// NewBoard builds a board from row strings, e.g. {"tape", "orin", ...}.
func NewBoard(rows []string) (*Board, error) {
	dim := len(rows)
	if dim == 0 {
		return nil, errBadRows
	}
	letters := make([]byte, 0, dim*dim)
	for _, row := range rows {
		row = strings.ToLower(row)
		if len(row) != dim {
			return nil, errBadRows
		}
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c < 'a' || c > 'z' {
				return nil, errBadRows
			}
			letters = append(letters, c)
		}
	}
	return &Board{letters: letters, dim: dim}, nil
}

func (b *Board) Dim() int {
	return b.dim
}

// Letter returns the lowercase letter at the given cell.
func (b *Board) Letter(row, col int) byte {
	return b.letters[row*b.dim+col]
}

// NumCells returns the number of cells on the board.
func (b *Board) NumCells() int {
	return b.dim * b.dim
}

// Neighbors returns the cell indexes adjacent to cell, including
// diagonals.
func (b *Board) Neighbors(cell int) []int {
	row, col := cell/b.dim, cell%b.dim
	ns := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= b.dim || c < 0 || c >= b.dim {
				continue
			}
			ns = append(ns, r*b.dim+c)
		}
	}
	return ns
}

// CellLetters returns the letters a path through the given cell spells.
// Every cell spells one letter except the "qu" face, which spells two.
func (b *Board) CellLetters(cell int) string {
	if b.letters[cell] == 'q' {
		return "qu"
	}
	return string(b.letters[cell])
}

// LegalWordInBoard reports whether word can be traced on the board along
// adjacent cells with no cell used twice. The check is purely geometric;
// it does not consult any dictionary.
func (b *Board) LegalWordInBoard(word string) bool {
	word = strings.ToLower(word)
	if word == "" {
		return false
	}
	visited := make([]bool, b.NumCells())
	for cell := 0; cell < b.NumCells(); cell++ {
		if b.tracePath(word, cell, visited) {
			return true
		}
	}
	return false
}

func (b *Board) tracePath(rest string, cell int, visited []bool) bool {
	spelled := b.CellLetters(cell)
	if !strings.HasPrefix(rest, spelled) {
		return false
	}
	rest = rest[len(spelled):]
	if rest == "" {
		return true
	}
	visited[cell] = true
	for _, n := range b.Neighbors(cell) {
		if visited[n] {
			continue
		}
		if b.tracePath(rest, n, visited) {
			return true
		}
	}
	visited[cell] = false
	return false
}

// ToDisplayText returns a drawing of the board suitable for the console.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("\n")
	for row := 0; row < b.dim; row++ {
		str.WriteString("  ")
		for col := 0; col < b.dim; col++ {
			face := strings.ToUpper(b.CellLetters(row*b.dim + col))
			str.WriteString(fmt.Sprintf("%-3s", face))
		}
		str.WriteString("\n")
	}
	return str.String()
}
