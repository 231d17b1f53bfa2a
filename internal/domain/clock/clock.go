package clock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Game time is carried in ticks (tenths of a second). Every source table is
// normalized to ticks at ingestion; rotation feeds that arrive in
// milliseconds go through FromMillis.
const (
	TicksPerSecond = 10

	RegulationPeriods       = 4
	RegulationPeriodSeconds = 12 * 60
	OvertimePeriodSeconds   = 5 * 60

	RegulationPeriodTicks = int64(RegulationPeriodSeconds * TicksPerSecond)
	OvertimePeriodTicks   = int64(OvertimePeriodSeconds * TicksPerSecond)

	regulationTotalTicks = RegulationPeriods * RegulationPeriodTicks
)

func FromMillis(ms int64) int64 {
	return ms / 100
}

// PeriodSeconds returns the length of a period in seconds.
func PeriodSeconds(period int) int {
	if period <= RegulationPeriods {
		return RegulationPeriodSeconds
	}
	return OvertimePeriodSeconds
}

func PeriodTicks(period int) int64 {
	return int64(PeriodSeconds(period)) * TicksPerSecond
}

// PeriodStart returns the tick at which a period begins.
func PeriodStart(period int) int64 {
	if period <= 1 {
		return 0
	}
	if period <= RegulationPeriods+1 {
		return int64(period-1) * RegulationPeriodTicks
	}
	return regulationTotalTicks + int64(period-RegulationPeriods-1)*OvertimePeriodTicks
}

// PeriodEnd returns the cumulative tick boundary at which a period ends.
func PeriodEnd(period int) int64 {
	return PeriodStart(period) + PeriodTicks(period)
}

// PeriodAt returns the period containing tick t. A tick sitting exactly on a
// boundary belongs to the period that is starting; the splitter applies the
// ending-period rule for segment tails itself.
func PeriodAt(t int64) int {
	if t < 0 {
		return 1
	}
	if t < regulationTotalTicks {
		return int(t/RegulationPeriodTicks) + 1
	}
	return RegulationPeriods + int((t-regulationTotalTicks)/OvertimePeriodTicks) + 1
}

// Countdown formats seconds remaining as a game clock: zero-padded seconds,
// no leading zero on minutes ("12:00", "0:05").
func Countdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ParseCountdown converts a "MM:SS" clock string to seconds remaining.
// Malformed clocks resolve to zero rather than failing; a bad clock on one
// event must never abort a whole game.
func ParseCountdown(clock string) int {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || minutes < 0 {
		return 0
	}
	secPart := strings.TrimSpace(parts[1])
	// Some feeds carry fractional seconds ("0:24.7").
	if dot := strings.IndexByte(secPart, '.'); dot >= 0 {
		secPart = secPart[:dot]
	}
	seconds, err := strconv.Atoi(secPart)
	if err != nil || seconds < 0 {
		return 0
	}
	return minutes*60 + seconds
}

// Remaining returns the seconds left on the countdown clock at tick t within
// its period.
func Remaining(period int, t int64) int {
	elapsed := int((t - PeriodStart(period)) / TicksPerSecond)
	remaining := PeriodSeconds(period) - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Minutes converts a tick duration to minutes with one-decimal rounding.
func Minutes(ticks int64) float64 {
	return math.Round(float64(ticks)/float64(60*TicksPerSecond)*10) / 10
}

// ElapsedMinutes positions a (period, seconds-remaining) pair on the
// whole-game elapsed-minutes axis used by the momentum timeline.
func ElapsedMinutes(period int, remainingSeconds int) float64 {
	base := float64(PeriodStart(period)) / float64(60*TicksPerSecond)
	inPeriod := float64(PeriodSeconds(period)-remainingSeconds) / 60
	return math.Round((base+inPeriod)*100) / 100
}
