package lexicon

// MinWordLength is the shortest word the game accepts.
const MinWordLength = 3

// IsWord is the structural check: plain ASCII letters, long enough to
// count. It says nothing about whether the word is real English.
func IsWord(word string) bool {
	if len(word) < MinWordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// IsEnglishWord reports dictionary membership in the given lexicon.
func IsEnglishWord(word string, lex Lexicon) bool {
	return lex.HasWord(word)
}

// WordScore returns the point value of a single word, by length.
func WordScore(word string) int {
	switch n := len(word); {
	case n < MinWordLength:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// PlayerScore totals the words in playerWords that no other player found.
// A word that appears in otherPlayersWords scores zero for everyone; only
// unique finds earn their value.
func PlayerScore(playerWords []string, otherPlayersWords []string) int {
	shared := make(map[string]struct{}, len(otherPlayersWords))
	for _, w := range otherPlayersWords {
		shared[w] = struct{}{}
	}
	total := 0
	for _, w := range playerWords {
		if _, ok := shared[w]; ok {
			continue
		}
		total += WordScore(w)
	}
	return total
}
