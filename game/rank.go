package game

// Rank is the coarse tier a player lands in relative to the theoretical
// maximum score for the round.
type Rank int

const (
	Platinum Rank = iota
	Gold
	Silver
	Bronze
)

func (r Rank) String() string {
	switch r {
	case Platinum:
		return "Platinum"
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case Bronze:
		return "Bronze"
	}
	return "Unknown"
}

// Message is the fixed blurb the console shows for each tier.
func (r Rank) Message() string {
	switch r {
	case Platinum:
		return "Incredible. Most of the board's words were yours."
	case Gold:
		return "Great round. You found a large share of what was there."
	case Silver:
		return "Solid. Plenty of words left on the board, though."
	case Bronze:
		return "The board had a lot more to give. Keep looking."
	}
	return ""
}

// RankFor classifies a score against the round's maximum. A zero score is
// treated as a ratio of 10 so it always lands in Bronze.
func RankFor(score, maxScore int) Rank {
	rank := 10
	if score != 0 {
		rank = maxScore / score
	}
	switch {
	case rank <= 2:
		return Platinum
	case rank <= 3:
		return Gold
	case rank <= 6:
		return Silver
	}
	return Bronze
}
