package game

import (
	"fmt"
	"sort"
)

// playerState is one player's standing in the round. Values are never
// mutated once they are part of a Game; every update makes a copy first.
type playerState struct {
	name    string
	words   []string // sorted, unique
	points  int
	hasTurn bool
}

func newPlayerState(name string) *playerState {
	return &playerState{
		name:    name,
		words:   []string{},
		hasTurn: true,
	}
}

func (p *playerState) copy() *playerState {
	words := make([]string, len(p.words))
	copy(words, p.words)
	return &playerState{
		name:    p.name,
		words:   words,
		points:  p.points,
		hasTurn: p.hasTurn,
	}
}

func (p *playerState) hasWord(word string) bool {
	i := sort.SearchStrings(p.words, word)
	return i < len(p.words) && p.words[i] == word
}

// withWord returns a copy of p with word inserted in sorted position.
func (p *playerState) withWord(word string) *playerState {
	np := p.copy()
	i := sort.SearchStrings(np.words, word)
	np.words = append(np.words, "")
	copy(np.words[i+1:], np.words[i:])
	np.words[i] = word
	return np
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, p.name, len(p.words), p.points)
}

type playerStates []*playerState
