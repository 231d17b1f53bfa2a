package boxscore

import (
	"math"
	"strconv"
	"strings"
)

// FillDerived computes the three derived metrics from the raw counts:
// hustle value, per-minute production (2-decimal rounding, 0 when the
// player logged no minutes) and the classic efficiency score.
func (t *Totals) FillDerived() {
	t.HV = t.REB + t.AST + t.BLK + t.STL - t.TOV

	t.Prod = 0
	if t.Min > 0 {
		t.Prod = math.Round(float64(t.PTS+t.HV)/t.Min*100) / 100
	}

	t.Eff = t.PTS + t.REB + t.AST + t.STL + t.BLK - (t.FGA - t.FGM) - (t.FTA - t.FTM) - t.TOV
}

// ParseMinutes reads the box-score minutes column, which arrives either as a
// plain number or as an "MM:SS" string. Malformed values resolve to 0; a bad
// minutes cell must not drop the game.
func ParseMinutes(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if i := strings.IndexByte(raw, ':'); i >= 0 {
		mins, errM := strconv.Atoi(raw[:i])
		secs, errS := strconv.Atoi(raw[i+1:])
		if errM != nil || errS != nil || mins < 0 || secs < 0 {
			return 0
		}
		return float64(mins) + float64(secs)/60
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// RoundMinutes applies the output contract's one-decimal rounding.
func RoundMinutes(min float64) float64 {
	return math.Round(min*10) / 10
}
