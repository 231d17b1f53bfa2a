package rotation

// Interval is one continuous on-court stretch for a player, as reported by
// the rotation table. Entry and exit are in ticks (tenths of a second from
// the opening tip) and may span period boundaries.
type Interval struct {
	PlayerID     int64
	FirstName    string
	LastName     string
	TeamID       int64
	TeamTricode  string
	EntryTick    int64
	ExitTick     int64
	RawPlusMinus int
}

// Segment is the portion of an Interval lying within a single period.
// InClock/OutClock are countdown clocks: InClock is the game clock when the
// player entered the segment, OutClock when they left it.
type Segment struct {
	Period    int
	InClock   string
	OutClock  string
	StartTick int64
	EndTick   int64
	Minutes   float64
}
