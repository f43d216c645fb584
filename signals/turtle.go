package signals

import (
	"fmt"

	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// Turtle implements the two classic turtle-trading breakout systems.
// System 1 enters on a 20-bar channel breakout and exits on the 10-bar
// channel; System 2 uses 55/20. The entry channel excludes the current bar,
// and the stop is pinned to the extreme of the exit-lookback window. System
// 2 carries higher confidence, reflecting its bias toward longer, higher
// conviction trends.
type Turtle struct {
	System int // 1 or 2
}

func NewTurtle(system int) *Turtle {
	return &Turtle{System: system}
}

func (t *Turtle) Name() string {
	return fmt.Sprintf("turtle-s%d", t.System)
}

func (t *Turtle) MinBars() int { return 60 }

func (t *Turtle) lookbacks() (entry, exit int) {
	if t.System == 2 {
		return 55, 20
	}
	return 20, 10
}

func (t *Turtle) confidence() int {
	if t.System == 2 {
		return 85
	}
	return 75
}

func (t *Turtle) Detect(series market.Series) []Signal {
	if len(series) < t.MinBars() {
		return nil
	}

	entryLB, exitLB := t.lookbacks()
	highs := series.Highs()
	lows := series.Lows()
	n := len(series)

	channelHigh := indicators.Max(highs, n-entryLB-1, n-1)
	channelLow := indicators.Min(lows, n-entryLB-1, n-1)

	last := series.Last()

	if last.High > channelHigh {
		return []Signal{{
			Type:       fmt.Sprintf("Turtle System %d Long", t.System),
			Confidence: t.confidence(),
			Entry:      last.Close,
			StopLoss:   ptr(indicators.Min(lows, n-exitLB-1, n-1)),
			Indicator:  "Donchian Channel",
		}}
	}
	if last.Low < channelLow {
		return []Signal{{
			Type:       fmt.Sprintf("Turtle System %d Short", t.System),
			Confidence: t.confidence(),
			Entry:      last.Close,
			StopLoss:   ptr(indicators.Max(highs, n-exitLB-1, n-1)),
			Indicator:  "Donchian Channel",
		}}
	}
	return nil
}
