package boxscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillDerived(t *testing.T) {
	t.Parallel()

	tot := Totals{
		Min: 36.5,
		FGM: 10, FGA: 20,
		FTM: 5, FTA: 6,
		REB: 8, AST: 6, BLK: 1, STL: 2, TOV: 3,
		PTS: 27,
	}
	tot.FillDerived()

	assert.Equal(t, 14, tot.HV)
	assert.InDelta(t, 1.12, tot.Prod, 0.001)
	assert.Equal(t, 30, tot.Eff)
}

func TestFillDerivedZeroMinutes(t *testing.T) {
	t.Parallel()

	tot := Totals{PTS: 2, REB: 1}
	tot.FillDerived()
	assert.Zero(t, tot.Prod)
}

func TestParseMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want float64
	}{
		{"34:30", 34.5},
		{"0:45", 0.75},
		{"36.5", 36.5},
		{"12", 12},
		{"", 0},
		{"DNP", 0},
		{"12:xx", 0},
		{"-3", 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, ParseMinutes(tc.raw), 0.0001, "raw=%q", tc.raw)
	}
}

func TestRoundMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 34.5, RoundMinutes(34.5167))
	assert.Equal(t, 10.1, RoundMinutes(10.0999))
}
