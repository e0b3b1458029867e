package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LexiconPath    string
	DefaultLexicon string
	// DiceFile optionally points at a YAML dice-set definition; empty
	// means the built-in classic set.
	DiceFile      string
	MaxWordLength int
	Debug         bool

	// Args holds the positional arguments left over after flag parsing.
	Args []string
}

// Load reads settings from flags and WORDGRID_* environment variables;
// flags win.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("wordgrid", pflag.ContinueOnError)
	fs.String("lexicon-path", "./data/lexica", "directory holding word list files")
	fs.String("default-lexicon", "sample", "the default lexicon to use")
	fs.String("dice-file", "", "YAML file with a custom dice set")
	fs.Int("max-word-length", 8, "longest word to enumerate on a board")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("wordgrid")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	c.LexiconPath = v.GetString("lexicon-path")
	c.DefaultLexicon = v.GetString("default-lexicon")
	c.DiceFile = v.GetString("dice-file")
	c.MaxWordLength = v.GetInt("max-word-length")
	c.Debug = v.GetBool("debug")
	c.Args = fs.Args()
	return nil
}

// AdjustRelativePaths anchors relative paths to the given directory,
// typically the executable's.
func (c *Config) AdjustRelativePaths(basepath string) {
	c.LexiconPath = toAbsPath(basepath, c.LexiconPath)
	if c.DiceFile != "" {
		c.DiceFile = toAbsPath(basepath, c.DiceFile)
	}
}

func toAbsPath(basepath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basepath, path)
}
