// Package lexicon answers word-validity questions for the game engine and
// owns all per-word scoring. The engine never looks inside a word list
// itself; it only talks to a Lexicon.
package lexicon

type Word = string

type Lexicon interface {
	Name() string
	HasWord(word Word) bool
	// HasPrefix reports whether any word in the lexicon starts with the
	// given prefix. Word generation uses it to prune dead branches.
	HasPrefix(prefix Word) bool
}

type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word Word) bool {
	return true
}

func (lex AcceptAll) HasPrefix(prefix Word) bool {
	return true
}
