package pbp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hoopsight/stintline/internal/domain/clock"
)

// assistRegex matches the "(Lastname 3 AST)" annotation the older schema
// appends to assisted makes.
var assistRegex = regexp.MustCompile(`\(([A-Za-z' .-]+?)\s+\d+\s+AST\)`)

// WindowEvent is an event selected into a player's segment window.
// ViaAssist marks events matched through the assist-attribution chain; they
// credit the assister, so the aggregator must not re-count the underlying
// shot for them.
type WindowEvent struct {
	Event
	ViaAssist bool
}

// FilterWindow selects the events belonging to one player within one
// segment. The countdown clock decreases with game time, so an event is in
// the window when inClock >= event clock >= outClock (inclusive on both
// ends). Malformed event clocks resolve to 0:00 and simply fall where they
// fall.
func FilterWindow(events []Event, playerID int64, lastName string, period int, inClock, outClock string) []WindowEvent {
	inSec := clock.ParseCountdown(inClock)
	outSec := clock.ParseCountdown(outClock)

	out := make([]WindowEvent, 0, 8)
	for _, e := range events {
		if e.Period != period {
			continue
		}
		sec := clock.ParseCountdown(e.Clock)
		if sec > inSec || sec < outSec {
			continue
		}
		if e.PersonID == playerID {
			out = append(out, WindowEvent{Event: e})
			continue
		}
		if AttributesAssist(e, playerID, lastName) {
			out = append(out, WindowEvent{Event: e, ViaAssist: true})
		}
	}
	return out
}

// AttributesAssist reports whether a made shot by somebody else credits the
// given player with the assist. Three-tier fallback: the explicit assist
// person id, then the secondary-actor id, then the "(Lastname N AST)"
// description annotation. The surname tier can mis-attribute when two
// rostered players share a last name; it stays last for that reason.
func AttributesAssist(e Event, playerID int64, lastName string) bool {
	c := e.Classify()
	if !c.Made || c.Kind == KindFreeThrow {
		return false
	}

	if e.AssistPersonID != 0 {
		return e.AssistPersonID == playerID
	}
	if e.SecondPersonID != 0 {
		return e.SecondPersonID == playerID
	}
	if lastName == "" {
		return false
	}
	matches := assistRegex.FindStringSubmatch(e.Desc())
	if len(matches) != 2 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(matches[1]), strings.TrimSpace(lastName))
}

// Dedupe drops repeated rows. The feed occasionally replays an event; two
// rows are the same event when sequence number, period, clock, actor and
// type all coincide.
func Dedupe(events []Event) []Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]Event, 0, len(events))
	for _, e := range events {
		key := fmt.Sprintf("%d|%d|%s|%d|%d|%s", e.EventNum, e.Period, e.Clock, e.PersonID, e.MsgType, e.Action)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
