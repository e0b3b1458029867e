package game

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board and the current standings for the
// console.
func (g *Game) ToDisplayText() string {
	var str strings.Builder
	str.WriteString(g.board.ToDisplayText())
	str.WriteString("\n")
	str.WriteString(fmt.Sprintf("%4v%20v%9v %4v\n", "", "player", "words", "pts"))
	for _, p := range g.players {
		str.WriteString(p.stateString(p.hasTurn))
		str.WriteString("\n")
	}
	return str.String()
}
