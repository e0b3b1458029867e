package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordScore(t *testing.T) {
	type scoretest struct {
		word string
		pts  int
	}
	testCases := []scoretest{
		{"at", 0},
		{"cat", 1},
		{"cart", 1},
		{"crate", 2},
		{"crates", 3},
		{"creates", 5},
		{"creation", 11},
		{"creations", 11},
	}
	for _, tc := range testCases {
		score := WordScore(tc.word)
		if score != tc.pts {
			t.Errorf("For %v, expected %v, got %v", tc.word, tc.pts, score)
		}
	}
}

func TestIsWord(t *testing.T) {
	assert.True(t, IsWord("cat"))
	assert.True(t, IsWord("creation"))
	assert.False(t, IsWord("at"))
	assert.False(t, IsWord("don't"))
	assert.False(t, IsWord("Cat"))
	assert.False(t, IsWord("c4t"))
	assert.False(t, IsWord(""))
}

func TestIsEnglishWord(t *testing.T) {
	lex := NewTrie("test", []string{"cat"})
	assert.True(t, IsEnglishWord("cat", lex))
	assert.False(t, IsEnglishWord("tac", lex))
	assert.True(t, IsEnglishWord("anything", AcceptAll{}))
}

func TestPlayerScore(t *testing.T) {
	// shared words score zero for everyone; unique finds earn full value
	mine := []string{"cat", "car", "crate"}
	others := []string{"car", "care"}
	assert.Equal(t, 3, PlayerScore(mine, others)) // cat(1) + crate(2)
	assert.Equal(t, 4, PlayerScore(mine, nil))
	assert.Equal(t, 0, PlayerScore(nil, others))
	assert.Equal(t, 0, PlayerScore([]string{"car"}, others))
}
