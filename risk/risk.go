// Package risk provides position sizing and stop/target placement helpers.
// Signals are advisory; these functions translate them into trade sizes for
// whoever executes them.
package risk

import "math"

// PositionSize returns the number of units to trade so that a stop-out
// loses riskPct of the balance. A zero risk distance sizes to zero rather
// than dividing by it.
func PositionSize(balance, riskPct, entry, stop float64) float64 {
	riskPerUnit := math.Abs(entry - stop)
	if riskPerUnit == 0 {
		return 0
	}
	return balance * riskPct / riskPerUnit
}

// ATRLevels derives stop-loss and take-profit prices from the current ATR.
// Direction is "long" or "short"; slMult and tpMult are ATR multiples.
func ATRLevels(entry, atr, slMult, tpMult float64, long bool) (sl, tp float64) {
	if long {
		return entry - atr*slMult, entry + atr*tpMult
	}
	return entry + atr*slMult, entry - atr*tpMult
}

// RR is the reward-to-risk ratio of the given levels, 0 when the risk
// distance is zero.
func RR(entry, stop, take float64) float64 {
	r := math.Abs(entry - stop)
	if r == 0 {
		return 0
	}
	return math.Abs(take-entry) / r
}
