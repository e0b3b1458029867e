package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestTrie(t *testing.T) {
	is := is.New(t)
	lex := NewTrie("test", []string{"CAT", "cats", "care", "dog"})

	is.Equal(lex.NumWords(), 4)
	is.True(lex.HasWord("cat"))
	is.True(lex.HasWord("cats"))
	is.True(!lex.HasWord("ca"))
	is.True(!lex.HasWord("cart"))
	is.True(lex.HasPrefix("ca"))
	is.True(lex.HasPrefix("care"))
	is.True(!lex.HasPrefix("cb"))
}

func TestTrieSkipsMalformedWords(t *testing.T) {
	is := is.New(t)
	lex := NewTrie("test", []string{"cat", "it", "don't", "résumé", "cat"})
	// only cat survives, and only once
	is.Equal(lex.NumWords(), 1)
}

func TestLoadTrie(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	filename := filepath.Join(dir, "tiny.txt")
	err := os.WriteFile(filename, []byte("cat\ncare\n\ndog\n"), 0o644)
	is.NoErr(err)

	lex, err := LoadTrie("tiny", filename)
	is.NoErr(err)
	is.Equal(lex.Name(), "tiny")
	is.Equal(lex.NumWords(), 3)
	is.True(lex.HasWord("care"))
}

func TestNamedTrieCaches(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "tiny.txt"), []byte("cat\n"), 0o644)
	is.NoErr(err)

	first, err := NamedTrie(dir, "tiny")
	is.NoErr(err)
	second, err := NamedTrie(dir, "tiny")
	is.NoErr(err)
	is.True(first == second)
}
