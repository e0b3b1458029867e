package shell

import "io"

const usageText = `Commands:
  new <player> [player...]   roll a fresh board and start a round
  show (s)                   show the board and standings
  add <player> <word>        submit a word for a player
  pass <player>              end a player's turn
  left                       list players still in the round
  words <player>             list a player's accepted words
  end                        score the round and show the summary
  help                       this text
  exit                       leave the shell
`

func usage(w io.Writer) {
	io.WriteString(w, usageText)
}
