package pbp

import (
	"regexp"
	"strings"
)

var (
	offRebRegex  = regexp.MustCompile(`(?i)off:\s*(\d+)`)
	madePtsRegex = regexp.MustCompile(`\(\d+\s+PTS\)`)
)

// Classify maps an event onto the canonical kind set. Structured fields win
// whenever they are populated; description tokens are the fallback for
// schema generations that omit them. Relying on text alone misfires (a block
// noted inside a miss description is still a miss for the shooter), and
// codes alone fail silently on the string-coded generation, so both tiers
// stay in place.
func (e Event) Classify() Classified {
	if !e.legacySchema() && e.Action != "" {
		return e.classifyAction()
	}
	if e.legacySchema() {
		return e.classifyMsgType()
	}
	return e.classifyDescription()
}

func (e Event) classifyAction() Classified {
	switch strings.ToLower(strings.TrimSpace(e.Action)) {
	case "2pt":
		if e.shotMissed() {
			return Classified{Kind: KindMiss2}
		}
		return Classified{Kind: KindMake2, Made: true, Points: 2}
	case "3pt":
		if e.shotMissed() {
			return Classified{Kind: KindMiss3}
		}
		return Classified{Kind: KindMake3, Made: true, Points: 3}
	case "freethrow":
		made := e.FreeThrowMade()
		points := 0
		if made {
			points = 1
		}
		return Classified{Kind: KindFreeThrow, Made: made, Points: points}
	case "rebound":
		return Classified{Kind: KindRebound}
	case "turnover":
		return Classified{Kind: KindTurnover}
	case "foul":
		return Classified{Kind: KindFoul}
	case "steal":
		return Classified{Kind: KindSteal}
	case "block":
		return Classified{Kind: KindBlock}
	case "assist":
		return Classified{Kind: KindAssist}
	default:
		return Classified{Kind: KindNonStat}
	}
}

func (e Event) classifyMsgType() Classified {
	switch e.MsgType {
	case msgTypeMake:
		if e.threePointAttempt() {
			return Classified{Kind: KindMake3, Made: true, Points: 3}
		}
		return Classified{Kind: KindMake2, Made: true, Points: 2}
	case msgTypeMiss:
		if e.threePointAttempt() {
			return Classified{Kind: KindMiss3}
		}
		return Classified{Kind: KindMiss2}
	case msgTypeFreeThrow:
		made := e.FreeThrowMade()
		points := 0
		if made {
			points = 1
		}
		return Classified{Kind: KindFreeThrow, Made: made, Points: points}
	case msgTypeRebound:
		return Classified{Kind: KindRebound}
	case msgTypeTurnover:
		return Classified{Kind: KindTurnover}
	case msgTypeFoul:
		return Classified{Kind: KindFoul}
	default:
		return Classified{Kind: KindNonStat}
	}
}

// classifyDescription is the last-resort tier for rows where neither schema
// populated a structured type. Token order matters: shot outcomes before
// defensive tokens, since a block or steal can be mentioned inside a shot
// description.
func (e Event) classifyDescription() Classified {
	desc := strings.ToUpper(e.Desc())
	switch {
	case desc == "":
		return Classified{Kind: KindNonStat}
	case strings.Contains(desc, "FREE THROW"):
		made := e.FreeThrowMade()
		points := 0
		if made {
			points = 1
		}
		return Classified{Kind: KindFreeThrow, Made: made, Points: points}
	case strings.Contains(desc, "MISS"):
		if strings.Contains(desc, "3PT") {
			return Classified{Kind: KindMiss3}
		}
		return Classified{Kind: KindMiss2}
	case strings.Contains(desc, "REBOUND"):
		return Classified{Kind: KindRebound}
	case strings.Contains(desc, "STEAL"):
		return Classified{Kind: KindSteal}
	case strings.Contains(desc, "BLOCK"):
		return Classified{Kind: KindBlock}
	case strings.Contains(desc, "TURNOVER"):
		return Classified{Kind: KindTurnover}
	case strings.Contains(desc, "FOUL"):
		return Classified{Kind: KindFoul}
	case madePtsRegex.MatchString(e.Desc()):
		if strings.Contains(desc, "3PT") {
			return Classified{Kind: KindMake3, Made: true, Points: 3}
		}
		return Classified{Kind: KindMake2, Made: true, Points: 2}
	default:
		return Classified{Kind: KindNonStat}
	}
}

func (e Event) shotMissed() bool {
	if e.ShotResult != "" {
		return strings.EqualFold(e.ShotResult, "Missed")
	}
	return strings.Contains(strings.ToUpper(e.Desc()), "MISS")
}

// threePointAttempt resolves the shot value of an integer-coded row: an
// explicit shot value when present, then the legacy action codes, then the
// "3PT" description token.
func (e Event) threePointAttempt() bool {
	if e.ShotValue != 0 {
		return e.ShotValue == 3
	}
	if e.ActionType == 2 || e.ActionType == 3 {
		return true
	}
	return strings.Contains(strings.ToUpper(e.Desc()), "3PT")
}

// FreeThrowMade applies the made-free-throw heuristic. The oldest schema has
// no made/missed flag for free throws: a "MISS" token means missed, a "MADE"
// token or a running "(N PTS)" annotation means made. Best-effort only;
// rows with none of the markers count as missed.
func (e Event) FreeThrowMade() bool {
	if e.ShotResult != "" {
		return strings.EqualFold(e.ShotResult, "Made")
	}
	desc := e.Desc()
	upper := strings.ToUpper(desc)
	if strings.Contains(upper, "MISS") {
		return false
	}
	return strings.Contains(upper, "MADE") || madePtsRegex.MatchString(desc)
}

// OffensiveRebound parses the running "Off:<n>" counter out of a rebound
// description. Rebounds without the token, or with a zero counter, are
// defensive by default. Best-effort: the counter is cumulative, so a later
// defensive board by a player who already has offensive ones can be
// over-counted.
func (e Event) OffensiveRebound() bool {
	matches := offRebRegex.FindStringSubmatch(e.Desc())
	if len(matches) != 2 {
		return false
	}
	return matches[1] != "0"
}
