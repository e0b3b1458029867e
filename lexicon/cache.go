package lexicon

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Loaded tries are large relative to everything else in this program, and
// the shell can start many rounds against the same word list. Cache them
// by filename.

type trieCache struct {
	sync.Mutex
	tries map[string]*Trie
}

var globalTrieCache = &trieCache{tries: make(map[string]*Trie)}

func (c *trieCache) get(name, filename string) (*Trie, error) {
	c.Lock()
	defer c.Unlock()
	if t, ok := c.tries[filename]; ok {
		log.Debug().Str("filename", filename).Msg("got trie from cache")
		return t, nil
	}
	t, err := LoadTrie(name, filename)
	if err != nil {
		return nil, err
	}
	c.tries[filename] = t
	return t, nil
}

// NamedTrie loads the trie for the named lexicon from lexiconPath,
// reusing a previously loaded copy when possible. The word list is
// expected at <lexiconPath>/<name>.txt.
func NamedTrie(lexiconPath, name string) (*Trie, error) {
	filename := filepath.Join(lexiconPath, name+".txt")
	return globalTrieCache.get(name, filename)
}
