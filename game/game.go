// Package game encapsulates the state and scoring for a multiplayer
// word-finding round. A Game is a value: every operation that changes
// anything returns a new Game and leaves the receiver untouched, so
// callers can branch from any state without interference. The package
// knows nothing about how a round is driven; shells, bots, timers and so
// on live outside.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lexaholic/wordgrid/board"
	"github.com/lexaholic/wordgrid/lexicon"
	"github.com/lexaholic/wordgrid/wordgen"
)

// MaxWordLength bounds the words enumerated for a board.
const MaxWordLength = 8

var (
	// ErrPlayerNotFound and ErrAmbiguousPlayer signal a broken roster
	// invariant. Neither is expected in correct usage.
	ErrPlayerNotFound  = errors.New("player not found")
	ErrAmbiguousPlayer = errors.New("player name is ambiguous")

	ErrNoPlayers      = errors.New("game has no players")
	ErrDuplicateNames = errors.New("duplicate player names")
)

type Game struct {
	board *board.Board
	lex   lexicon.Lexicon

	players playerStates
	// possibleWords is every word the board supports up to MaxWordLength,
	// computed once at creation. Sorted.
	possibleWords []string
}

// NewGame starts a round on the given board. Each named player starts
// with no words, zero points, and an active turn.
func NewGame(b *board.Board, lex lexicon.Lexicon, playerNames []string) (*Game, error) {
	if len(playerNames) == 0 {
		return nil, ErrNoPlayers
	}
	if len(lo.Uniq(playerNames)) != len(playerNames) {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateNames, playerNames)
	}
	players := make(playerStates, len(playerNames))
	for i, name := range playerNames {
		players[i] = newPlayerState(name)
	}
	possible, err := wordgen.AllWords(context.Background(), b, lex, MaxWordLength)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("players", playerNames).Int("possibleWords", len(possible)).
		Msg("new game")
	return &Game{
		board:         b,
		lex:           lex,
		players:       players,
		possibleWords: possible,
	}, nil
}

// player finds the unique player with the given name. More than one
// match means the roster invariant was broken somewhere upstream; treat
// it like an assertion failure.
func (g *Game) player(name string) (int, *playerState, error) {
	idx, matches := -1, 0
	for i, p := range g.players {
		if p.name == name {
			idx = i
			matches++
		}
	}
	switch {
	case matches == 0:
		return -1, nil, fmt.Errorf("%w: %v", ErrPlayerNotFound, name)
	case matches > 1:
		return -1, nil, fmt.Errorf("%w: %v", ErrAmbiguousPlayer, name)
	}
	return idx, g.players[idx], nil
}

// withPlayerAt returns a new Game with the player at idx replaced. The
// roster slice is rebuilt so the old Game never sees the change; player
// values themselves are immutable so sharing the rest is safe.
func (g *Game) withPlayerAt(idx int, p *playerState) *Game {
	players := make(playerStates, len(g.players))
	copy(players, g.players)
	players[idx] = p
	return &Game{
		board:         g.board,
		lex:           g.lex,
		players:       players,
		possibleWords: g.possibleWords,
	}
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

// PlayerNames returns the roster in insertion order.
func (g *Game) PlayerNames() []string {
	return lo.Map(g.players, func(p *playerState, _ int) string {
		return p.name
	})
}

// Words returns the named player's accepted words, sorted.
func (g *Game) Words(name string) ([]string, error) {
	_, p, err := g.player(name)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(p.words))
	copy(words, p.words)
	return words, nil
}

func (g *Game) Score(name string) (int, error) {
	_, p, err := g.player(name)
	if err != nil {
		return 0, err
	}
	return p.points, nil
}

func (g *Game) HasTurn(name string) (bool, error) {
	_, p, err := g.player(name)
	if err != nil {
		return false, err
	}
	return p.hasTurn, nil
}

// PlayersLeft returns the names of players still eligible this round.
func (g *Game) PlayersLeft() []string {
	left := lo.Filter(g.players, func(p *playerState, _ int) bool {
		return p.hasTurn
	})
	return lo.Map(left, func(p *playerState, _ int) string {
		return p.name
	})
}

// NoTurnsLeft reports whether every player's turn has expired; the round
// is over once it returns true.
func (g *Game) NoTurnsLeft() bool {
	return lo.EveryBy(g.players, func(p *playerState) bool {
		return !p.hasTurn
	})
}

// ExpireTurn takes the named player out of the round, on a timeout or an
// explicit pass. Everything else about the player is unchanged.
func (g *Game) ExpireTurn(name string) (*Game, error) {
	idx, p, err := g.player(name)
	if err != nil {
		return nil, err
	}
	np := p.copy()
	np.hasTurn = false
	return g.withPlayerAt(idx, np), nil
}

// AddWord submits a word for the named player. An unacceptable word is
// not an error; the game comes back unchanged and the caller can diff
// the player's word set if it cares. A successful submission puts the
// player back in the round; only ExpireTurn takes them out.
func (g *Game) AddWord(name, word string) (*Game, error) {
	idx, p, err := g.player(name)
	if err != nil {
		return nil, err
	}
	word = strings.ToLower(word)

	var reason string
	switch {
	case p.hasWord(word):
		reason = "already found"
	case !g.board.LegalWordInBoard(word):
		reason = "no legal path on board"
	case !lexicon.IsWord(word):
		reason = "not a valid word"
	case !lexicon.IsEnglishWord(word, g.lex):
		reason = "not in lexicon"
	}
	if reason != "" {
		log.Debug().Str("player", name).Str("word", word).Str("reason", reason).
			Msg("word rejected")
		return g, nil
	}

	np := p.withWord(word)
	np.hasTurn = true
	return g.withPlayerAt(idx, np), nil
}

// SetScore replaces the named player's points.
func (g *Game) SetScore(name string, points int) (*Game, error) {
	idx, p, err := g.player(name)
	if err != nil {
		return nil, err
	}
	np := p.copy()
	np.points = points
	return g.withPlayerAt(idx, np), nil
}

// otherPlayerWords collects every word found by anyone except name.
func (g *Game) otherPlayerWords(name string) []string {
	words := []string{}
	for _, p := range g.players {
		if p.name != name {
			words = append(words, p.words...)
		}
	}
	return words
}

// UpdateFinalScores folds each player's round contribution into their
// points, in roster order. A word that only this player found earns its
// full value; a word any other player also found earns nothing for
// anyone. Each player is scored exactly once against the word sets as
// they stood at round end.
func (g *Game) UpdateFinalScores() (*Game, error) {
	names := g.PlayerNames()
	cur := g
	for _, name := range names {
		_, p, err := cur.player(name)
		if err != nil {
			return nil, err
		}
		contribution := lexicon.PlayerScore(p.words, cur.otherPlayerWords(name))
		cur, err = cur.SetScore(name, p.points+contribution)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// PossibleWords returns every word the board supports, sorted.
func (g *Game) PossibleWords() []string {
	words := make([]string, len(g.possibleWords))
	copy(words, g.possibleWords)
	return words
}

// MaxScore is the theoretical ceiling for the round: the value of every
// possible word with no other player sharing any of them.
func (g *Game) MaxScore() int {
	return lexicon.PlayerScore(g.possibleWords, nil)
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Lexicon() lexicon.Lexicon {
	return g.lex
}
