package game

import (
	"testing"

	"github.com/matryer/is"
)

func gameWithScores(names []string, points []int) *Game {
	players := make(playerStates, len(names))
	for i, name := range names {
		players[i] = newPlayerState(name)
		players[i].points = points[i]
	}
	return &Game{players: players}
}

func TestWinner(t *testing.T) {
	is := is.New(t)
	g := gameWithScores([]string{"alice", "bob", "carol"}, []int{3, 7, 5})
	name, points, err := g.Winner()
	is.NoErr(err)
	is.Equal(name, "bob")
	is.Equal(points, 7)
}

func TestWinnerTieGoesToLast(t *testing.T) {
	is := is.New(t)
	g := gameWithScores([]string{"alice", "bob", "carol"}, []int{7, 3, 7})
	name, _, err := g.Winner()
	is.NoErr(err)
	is.Equal(name, "carol")
}

func TestWinnerNoPlayers(t *testing.T) {
	is := is.New(t)
	_, _, err := (&Game{}).Winner()
	is.True(err != nil)
}

func TestDrawn(t *testing.T) {
	is := is.New(t)

	// a single player is always reported as a draw
	is.True(gameWithScores([]string{"alice"}, []int{5}).Drawn())

	is.True(gameWithScores([]string{"alice", "bob"}, []int{5, 5}).Drawn())
	is.True(!gameWithScores([]string{"alice", "bob"}, []int{5, 3}).Drawn())
	is.True(gameWithScores([]string{"a", "b", "c"}, []int{2, 4, 4}).Drawn())
	// only neighbouring entries are compared, so this tie goes unseen
	is.True(!gameWithScores([]string{"a", "b", "c"}, []int{4, 2, 4}).Drawn())
}
