package board

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"
)

// A DiceSet describes the cube faces a board is rolled from, one
// six-letter string per die. The letter q stands for the "qu" face.
type DiceSet struct {
	Name string   `yaml:"name"`
	Dice []string `yaml:"dice"`
}

// ClassicDice is the standard 16-die set for a 4x4 board.
var ClassicDice = DiceSet{
	Name: "classic",
	Dice: []string{
		"aaeegn", "abbjoo", "achops", "affkps",
		"aoottw", "cimotu", "deilrx", "delrvy",
		"distty", "eeghnw", "eeinsu", "ehrtvw",
		"eiosst", "elrtty", "himnqu", "hlnnrz",
	},
}

// BigDice is the 25-die set for a 5x5 board.
var BigDice = DiceSet{
	Name: "big",
	Dice: []string{
		"aaafrs", "aaeeee", "aafirs", "adennn", "aeeeem",
		"aeegmu", "aegmnn", "afirsy", "bjkqxz", "ccnstw",
		"ceiilt", "ceilpt", "ceipst", "ddlnor", "dhhlor",
		"dhhnot", "dhlnor", "eiiitt", "emottt", "ensssu",
		"fiprsy", "gorrvw", "hiprry", "nootuw", "ooottu",
	},
}

// LoadDiceSet reads a custom dice set from a YAML file.
func LoadDiceSet(filename string) (DiceSet, error) {
	var ds DiceSet
	data, err := os.ReadFile(filename)
	if err != nil {
		return ds, err
	}
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return ds, err
	}
	if err := ds.validate(); err != nil {
		return ds, err
	}
	return ds, nil
}

func (ds DiceSet) validate() error {
	dim := int(math.Sqrt(float64(len(ds.Dice))))
	if dim == 0 || dim*dim != len(ds.Dice) {
		return fmt.Errorf("dice set %v has %v dice, need a perfect square",
			ds.Name, len(ds.Dice))
	}
	for _, die := range ds.Dice {
		if len(die) != 6 {
			return fmt.Errorf("die %q in set %v does not have 6 faces", die, ds.Name)
		}
	}
	return nil
}

// Roll shuffles the dice onto the grid and rolls a face for each one.
func (ds DiceSet) Roll() (*Board, error) {
	if err := ds.validate(); err != nil {
		return nil, err
	}
	dim := int(math.Sqrt(float64(len(ds.Dice))))

	order := make([]string, len(ds.Dice))
	copy(order, ds.Dice)
	frand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	rows := make([]string, dim)
	for row := 0; row < dim; row++ {
		var sb strings.Builder
		for col := 0; col < dim; col++ {
			die := order[row*dim+col]
			sb.WriteByte(die[frand.Intn(6)])
		}
		rows[row] = sb.String()
	}
	return NewBoard(rows)
}
