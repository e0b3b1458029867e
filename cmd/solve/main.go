// solve enumerates and scores every word a board supports. Board rows are
// given as positional arguments (e.g. `solve tape orin dcus kelm`); with
// no rows, a fresh board is rolled.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lexaholic/wordgrid/board"
	"github.com/lexaholic/wordgrid/config"
	"github.com/lexaholic/wordgrid/lexicon"
	"github.com/lexaholic/wordgrid/wordgen"
)

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		panic(err)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	var b *board.Board
	if len(cfg.Args) > 0 {
		b, err = board.NewBoard(cfg.Args)
	} else {
		dice := board.ClassicDice
		if cfg.DiceFile != "" {
			dice, err = board.LoadDiceSet(cfg.DiceFile)
			if err != nil {
				log.Fatal().Err(err).Msg("could not load dice set")
			}
		}
		b, err = dice.Roll()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("could not build board")
	}

	lex, err := lexicon.NamedTrie(cfg.LexiconPath, cfg.DefaultLexicon)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load lexicon")
	}

	words, err := wordgen.AllWords(context.Background(), b, lex, cfg.MaxWordLength)
	if err != nil {
		log.Fatal().Err(err).Msg("enumeration failed")
	}

	fmt.Println(b.ToDisplayText())
	for _, w := range words {
		fmt.Printf("%-10s %3d\n", w, lexicon.WordScore(w))
	}
	fmt.Printf("\n%d words, max score %d\n", len(words),
		lexicon.PlayerScore(words, nil))
}
