// Package shell is the interactive console for playing a round. It is a
// thin consumer of the game package's query functions; nothing in here
// touches game state except through the engine's operations.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/lexaholic/wordgrid/board"
	"github.com/lexaholic/wordgrid/config"
	"github.com/lexaholic/wordgrid/game"
	"github.com/lexaholic/wordgrid/lexicon"
)

var errNoGame = errors.New("no game in progress; start one with `new`")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curGame *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordgrid>\033[0m ",
		HistoryFile:     "/tmp/wordgrid_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.execLine(line); err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop")
}

func (sc *ShellController) execLine(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		fields = strings.Fields(line)
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		return sc.handleNew(args)
	case "show", "s":
		return sc.handleShow()
	case "add":
		return sc.handleAdd(args)
	case "pass":
		return sc.handlePass(args)
	case "left":
		return sc.handleLeft()
	case "words":
		return sc.handleWords(args)
	case "end":
		return sc.handleEnd()
	case "help":
		usage(sc.l.Stdout())
		return nil
	}
	return fmt.Errorf("command %v not found; type `help`", cmd)
}

func (sc *ShellController) handleNew(playerNames []string) error {
	if len(playerNames) == 0 {
		return errors.New("usage: new <player> [player...]")
	}
	dice := board.ClassicDice
	if sc.cfg.DiceFile != "" {
		var err error
		dice, err = board.LoadDiceSet(sc.cfg.DiceFile)
		if err != nil {
			return err
		}
	}
	b, err := dice.Roll()
	if err != nil {
		return err
	}
	lex, err := lexicon.NamedTrie(sc.cfg.LexiconPath, sc.cfg.DefaultLexicon)
	if err != nil {
		return err
	}
	g, err := game.NewGame(b, lex, playerNames)
	if err != nil {
		return err
	}
	sc.curGame = g
	sc.showMessage(g.ToDisplayText())
	return nil
}

func (sc *ShellController) handleShow() error {
	if sc.curGame == nil {
		return errNoGame
	}
	sc.showMessage(sc.curGame.ToDisplayText())
	return nil
}

func (sc *ShellController) handleAdd(args []string) error {
	if sc.curGame == nil {
		return errNoGame
	}
	if len(args) != 2 {
		return errors.New("usage: add <player> <word>")
	}
	name, word := args[0], args[1]

	// Submission failure is silent in the engine; detect it by diffing
	// the word set.
	before, err := sc.curGame.Words(name)
	if err != nil {
		return err
	}
	g, err := sc.curGame.AddWord(name, word)
	if err != nil {
		return err
	}
	after, err := g.Words(name)
	if err != nil {
		return err
	}
	sc.curGame = g
	if len(after) == len(before) {
		sc.showMessage(fmt.Sprintf("%v was not accepted", word))
	} else {
		sc.showMessage(fmt.Sprintf("%v accepted for %v", strings.ToLower(word), name))
	}
	return nil
}

func (sc *ShellController) handlePass(args []string) error {
	if sc.curGame == nil {
		return errNoGame
	}
	if len(args) != 1 {
		return errors.New("usage: pass <player>")
	}
	g, err := sc.curGame.ExpireTurn(args[0])
	if err != nil {
		return err
	}
	sc.curGame = g
	if g.NoTurnsLeft() {
		sc.showMessage("no turns left; type `end` to finish the round")
	}
	return nil
}

func (sc *ShellController) handleLeft() error {
	if sc.curGame == nil {
		return errNoGame
	}
	left := sc.curGame.PlayersLeft()
	if len(left) == 0 {
		sc.showMessage("no players left this round")
		return nil
	}
	sc.showMessage(strings.Join(left, " "))
	return nil
}

func (sc *ShellController) handleWords(args []string) error {
	if sc.curGame == nil {
		return errNoGame
	}
	if len(args) != 1 {
		return errors.New("usage: words <player>")
	}
	words, err := sc.curGame.Words(args[0])
	if err != nil {
		return err
	}
	sc.showMessage(strings.Join(words, " "))
	return nil
}

func (sc *ShellController) handleEnd() error {
	if sc.curGame == nil {
		return errNoGame
	}
	g, err := sc.curGame.UpdateFinalScores()
	if err != nil {
		return err
	}
	sc.curGame = g
	sc.showMessage(sc.roundReport(g))
	return nil
}

// roundReport builds the end-of-round summary: per-player words and
// totals, the winner or a draw, rank tiers, and everything the board had.
func (sc *ShellController) roundReport(g *game.Game) string {
	var str strings.Builder
	maxScore := g.MaxScore()

	for _, name := range g.PlayerNames() {
		words, err := g.Words(name)
		if err != nil {
			return err.Error()
		}
		points, err := g.Score(name)
		if err != nil {
			return err.Error()
		}
		str.WriteString(fmt.Sprintf("%v found: %v\n", name, strings.Join(words, " ")))
		str.WriteString(fmt.Sprintf("%v total: %v\n", name, points))
		rank := game.RankFor(points, maxScore)
		str.WriteString(fmt.Sprintf("%v rank: %v - %v\n", name, rank, rank.Message()))
	}

	if g.Drawn() {
		str.WriteString("the round is a draw\n")
	} else if name, points, err := g.Winner(); err == nil {
		str.WriteString(fmt.Sprintf("%v wins with %v points\n", name, points))
	}

	str.WriteString(fmt.Sprintf("\nthe board had %v words (max score %v):\n",
		len(g.PossibleWords()), maxScore))
	str.WriteString(strings.Join(g.PossibleWords(), " "))
	str.WriteString("\n")
	return str.String()
}
