package pbp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWindowByPeriodAndClock(t *testing.T) {
	t.Parallel()

	events := []Event{
		{EventNum: 1, Period: 1, Clock: "11:30", PersonID: 7, MsgType: 1, ActionType: 1},
		{EventNum: 2, Period: 1, Clock: "9:00", PersonID: 7, MsgType: 4},
		{EventNum: 3, Period: 1, Clock: "3:59", PersonID: 7, MsgType: 5}, // below the window
		{EventNum: 4, Period: 2, Clock: "10:00", PersonID: 7, MsgType: 6}, // wrong period
		{EventNum: 5, Period: 1, Clock: "8:00", PersonID: 9, MsgType: 1, ActionType: 1}, // other player
	}

	got := FilterWindow(events, 7, "Smith", 1, "12:00", "4:00")
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].EventNum)
	assert.Equal(t, int64(2), got[1].EventNum)
	assert.False(t, got[0].ViaAssist)
}

func TestFilterWindowInclusiveBounds(t *testing.T) {
	t.Parallel()

	events := []Event{
		{EventNum: 1, Period: 3, Clock: "10:00", PersonID: 5, MsgType: 4},
		{EventNum: 2, Period: 3, Clock: "6:00", PersonID: 5, MsgType: 4},
	}
	got := FilterWindow(events, 5, "", 3, "10:00", "6:00")
	assert.Len(t, got, 2)
}

func TestFilterWindowMalformedClockDefaultsToZero(t *testing.T) {
	t.Parallel()

	events := []Event{{EventNum: 1, Period: 1, Clock: "??", PersonID: 5, MsgType: 4}}

	// 0:00 sits inside a window that reaches the period end...
	assert.Len(t, FilterWindow(events, 5, "", 1, "12:00", "0:00"), 1)
	// ...and outside one that does not.
	assert.Empty(t, FilterWindow(events, 5, "", 1, "12:00", "4:00"))
}

func TestFilterWindowAssistPath(t *testing.T) {
	t.Parallel()

	events := []Event{
		// Explicit assist id on a string-coded make.
		{EventNum: 1, Period: 1, Clock: "8:00", PersonID: 9, Action: "2pt", ShotResult: "Made", AssistPersonID: 7},
		// Secondary actor on an integer-coded make.
		{EventNum: 2, Period: 1, Clock: "7:00", PersonID: 9, MsgType: 1, ActionType: 1, SecondPersonID: 7},
		// Surname annotation only.
		{EventNum: 3, Period: 1, Clock: "6:00", PersonID: 9, MsgType: 1, ActionType: 1, HomeDesc: "Jones 15' Jumper (8 PTS) (Smith 4 AST)"},
		// A miss never attributes an assist.
		{EventNum: 4, Period: 1, Clock: "5:00", PersonID: 9, MsgType: 2, ActionType: 1, SecondPersonID: 7},
		// Somebody else's assist.
		{EventNum: 5, Period: 1, Clock: "4:00", PersonID: 9, MsgType: 1, ActionType: 1, SecondPersonID: 8},
	}

	got := FilterWindow(events, 7, "Smith", 1, "12:00", "0:00")
	require.Len(t, got, 3)
	for _, we := range got {
		assert.True(t, we.ViaAssist, "event %d", we.EventNum)
	}
}

func TestAttributesAssistTierOrder(t *testing.T) {
	t.Parallel()

	// The explicit id wins even when the annotation names someone else.
	e := Event{Action: "2pt", ShotResult: "Made", PersonID: 9, AssistPersonID: 7, Description: "Jones Layup (Brown 2 AST)"}
	assert.True(t, AttributesAssist(e, 7, "Brown"))
	assert.False(t, AttributesAssist(e, 8, "Brown"))

	// Free throws never carry assists.
	ft := Event{Action: "freethrow", ShotResult: "Made", PersonID: 9, AssistPersonID: 7}
	assert.False(t, AttributesAssist(ft, 7, ""))
}

func TestAttributesAssistSurnameMatch(t *testing.T) {
	t.Parallel()

	e := Event{MsgType: 1, ActionType: 1, PersonID: 9, VisitorDesc: "Jones Driving Layup (6 PTS) (Van Horn 3 AST)"}
	assert.True(t, AttributesAssist(e, 7, "Van Horn"))
	assert.True(t, AttributesAssist(e, 7, "van horn"))
	assert.False(t, AttributesAssist(e, 7, "Smith"))
	assert.False(t, AttributesAssist(e, 7, ""))
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	a := Event{EventNum: 10, Period: 1, Clock: "5:00", PersonID: 7, MsgType: 1}
	b := Event{EventNum: 11, Period: 1, Clock: "5:00", PersonID: 7, MsgType: 1}
	got := Dedupe([]Event{a, a, b, a})
	require.Len(t, got, 2)
	assert.Equal(t, int64(10), got[0].EventNum)
	assert.Equal(t, int64(11), got[1].EventNum)
}
