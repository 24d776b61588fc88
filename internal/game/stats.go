package game

import (
	"math"

	"github.com/samber/lo"
)

// MaxBar is the length of the longest histogram bar.
const MaxBar = 120

// Stats summarizes a player's finished games.
type Stats struct {
	Played       int         `json:"played"`
	Won          int         `json:"won"`
	Lost         int         `json:"lost"`
	SuccessRate  int         `json:"successRate"` // whole percent
	Distribution [Rounds]int `json:"distribution"`
	Bars         [Rounds]int `json:"bars"` // 0..MaxBar, scaled to the fullest bucket
}

// Stats computes the summary shown in the stats panel.
func (s State) Stats() Stats {
	st := Stats{
		Played:       s.GamesWon + s.GamesLost,
		Won:          s.GamesWon,
		Lost:         s.GamesLost,
		Distribution: s.WinDistribution,
	}
	if st.Played > 0 {
		st.SuccessRate = int(math.Round(float64(st.Won) / float64(st.Played) * 100))
	}
	if top := lo.Max(s.WinDistribution[:]); top > 0 {
		for i, v := range s.WinDistribution {
			st.Bars[i] = MaxBar * v / top
		}
	}
	return st
}
