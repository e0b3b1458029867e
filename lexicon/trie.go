package lexicon

import (
	"bufio"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Trie is a prefix tree over the lowercase ASCII alphabet. It is the
// concrete Lexicon used everywhere outside of tests; the word lists it is
// built from are plain newline-separated text files.
type Trie struct {
	name     string
	root     *trieNode
	numWords int
}

type trieNode struct {
	children [26]*trieNode
	terminal bool
}

// NewTrie builds a lexicon from a word slice. Words that are not plain
// ASCII letters are skipped; everything is lowercased on the way in.
func NewTrie(name string, words []string) *Trie {
	t := &Trie{name: name, root: &trieNode{}}
	for _, w := range words {
		t.insert(w)
	}
	return t
}

// LoadTrie reads a newline-separated word list from disk.
func LoadTrie(name, filename string) (*Trie, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t := &Trie{name: name, root: &trieNode{}}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		t.insert(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("lexicon", name).Int("words", t.numWords).
		Msg("loaded word list")
	return t, nil
}

func (t *Trie) insert(word string) {
	word = strings.ToLower(word)
	if !IsWord(word) {
		return
	}
	node := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'a'
		if node.children[idx] == nil {
			node.children[idx] = &trieNode{}
		}
		node = node.children[idx]
	}
	if !node.terminal {
		node.terminal = true
		t.numWords++
	}
}

// traverse walks the trie along s, returning nil if s leaves the tree.
func (t *Trie) traverse(s string) *trieNode {
	node := t.root
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return nil
		}
		node = node.children[c-'a']
		if node == nil {
			return nil
		}
	}
	return node
}

func (t *Trie) Name() string {
	return t.name
}

func (t *Trie) NumWords() int {
	return t.numWords
}

func (t *Trie) HasWord(word Word) bool {
	node := t.traverse(word)
	return node != nil && node.terminal
}

func (t *Trie) HasPrefix(prefix Word) bool {
	return t.traverse(prefix) != nil
}
