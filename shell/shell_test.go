package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/lexaholic/wordgrid/board"
	"github.com/lexaholic/wordgrid/game"
	"github.com/lexaholic/wordgrid/lexicon"
)

func finishedGame(t *testing.T) *game.Game {
	is := is.New(t)
	b, err := board.NewBoard([]string{
		"cat",
		"ren",
		"sod",
	})
	is.NoErr(err)
	lex := lexicon.NewTrie("test", []string{"cat", "car", "care", "ten"})
	g, err := game.NewGame(b, lex, []string{"alice", "bob"})
	is.NoErr(err)

	g, err = g.AddWord("alice", "cat")
	is.NoErr(err)
	g, err = g.AddWord("bob", "care")
	is.NoErr(err)
	g, err = g.UpdateFinalScores()
	is.NoErr(err)
	return g
}

func TestRoundReport(t *testing.T) {
	is := is.New(t)
	sc := &ShellController{}
	report := sc.roundReport(finishedGame(t))

	is.True(strings.Contains(report, "alice found: cat"))
	is.True(strings.Contains(report, "bob found: care"))
	is.True(strings.Contains(report, "the round is a draw"))
	is.True(strings.Contains(report, "the board had 4 words"))
}

func TestExecLineRequiresGame(t *testing.T) {
	is := is.New(t)
	sc := &ShellController{}
	for _, line := range []string{"show", "add alice cat", "pass alice", "left", "end"} {
		is.Equal(sc.execLine(line), errNoGame)
	}
}

func TestExecLineUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc := &ShellController{}
	is.True(sc.execLine("frobnicate") != nil)
}
