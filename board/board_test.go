package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard([]string{
		"cat",
		"ren",
		"sod",
	})
	assert.NoError(t, err)
	return b
}

func TestNewBoardValidation(t *testing.T) {
	var err error
	_, err = NewBoard(nil)
	assert.Error(t, err)
	_, err = NewBoard([]string{"ab", "cde"})
	assert.Error(t, err)
	_, err = NewBoard([]string{"a1", "bc"})
	assert.Error(t, err)

	b, err := NewBoard([]string{"AB", "cd"})
	assert.NoError(t, err)
	assert.Equal(t, byte('a'), b.Letter(0, 0))
	assert.Equal(t, 2, b.Dim())
}

func TestLegalWordInBoard(t *testing.T) {
	b := testBoard(t)

	type pathtest struct {
		word  string
		legal bool
	}
	testCases := []pathtest{
		{"cat", true},
		{"car", true},
		{"care", true},
		{"ten", true},
		{"eat", true},
		{"ear", true},
		{"dose", true}, // s and e touch diagonally
		{"cone", false}, // c and o are not adjacent
		{"cats", false}, // t and s are not adjacent
		{"earn", false}, // r and n are not adjacent
		{"tat", false},  // would reuse the only t
		{"cab", false},  // no b anywhere
		{"", false},
	}
	for _, tc := range testCases {
		if b.LegalWordInBoard(tc.word) != tc.legal {
			t.Errorf("For %v, expected legal=%v", tc.word, tc.legal)
		}
	}
}

func TestLegalWordCaseInsensitive(t *testing.T) {
	b := testBoard(t)
	assert.True(t, b.LegalWordInBoard("CAT"))
	assert.True(t, b.LegalWordInBoard("Care"))
}

func TestQuCell(t *testing.T) {
	b, err := NewBoard([]string{"qa", "nd"})
	assert.NoError(t, err)

	assert.Equal(t, "qu", b.CellLetters(0))
	assert.True(t, b.LegalWordInBoard("quad"))
	assert.True(t, b.LegalWordInBoard("quand"))
	// the q cell always spells qu, so a bare q never matches
	assert.False(t, b.LegalWordInBoard("qat"))
}

func TestNeighbors(t *testing.T) {
	b := testBoard(t)
	assert.Len(t, b.Neighbors(0), 3) // corner
	assert.Len(t, b.Neighbors(1), 5) // edge
	assert.Len(t, b.Neighbors(4), 8) // center
}
