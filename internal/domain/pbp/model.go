package pbp

// Kind is the canonical classification of a play-by-play event, independent
// of which source schema version produced it.
type Kind string

const (
	KindMake2     Kind = "make2"
	KindMake3     Kind = "make3"
	KindMiss2     Kind = "miss2"
	KindMiss3     Kind = "miss3"
	KindFreeThrow Kind = "fta"
	KindRebound   Kind = "reb"
	KindTurnover  Kind = "tov"
	KindFoul      Kind = "foul"
	KindSteal     Kind = "stl"
	KindBlock     Kind = "blk"
	KindAssist    Kind = "ast"
	KindNonStat   Kind = "other"
)

// Legacy numeric event codes (the integer-coded schema).
const (
	msgTypeMake      = 1
	msgTypeMiss      = 2
	msgTypeFreeThrow = 3
	msgTypeRebound   = 4
	msgTypeTurnover  = 5
	msgTypeFoul      = 6
)

// Event is one play-by-play row. The upstream API has shipped two schema
// generations and games can arrive in either, so the struct is a tagged
// union: the integer-coded fields (MsgType/ActionType, split descriptions,
// combined score text) belong to the older generation, the string-coded
// fields (Action/SubAction, shot result and value, explicit assist person,
// per-side score columns) to the newer one. Classify dispatches on which
// side is populated. Events are read-only; they are filtered and classified
// but never mutated.
type Event struct {
	EventNum int64
	Period   int
	Clock    string

	// Integer-coded schema.
	MsgType     int
	ActionType  int
	HomeDesc    string
	VisitorDesc string
	NeutralDesc string
	ScoreText   string // "away - home"

	// String-coded schema.
	Action     string
	SubAction  string
	ShotResult string // "Made" / "Missed"
	ShotValue  int
	ScoreHome  string
	ScoreAway  string

	PersonID       int64
	SecondPersonID int64
	AssistPersonID int64
	Description    string
}

// Classified is an Event tagged with its canonical kind. For shots, Made and
// Points carry the make/miss flag and the shot value.
type Classified struct {
	Kind   Kind
	Made   bool
	Points int
}

// Desc returns the first populated description field. The older schema
// splits descriptions by bench side, the newer one carries a single string.
func (e Event) Desc() string {
	for _, d := range []string{e.Description, e.HomeDesc, e.VisitorDesc, e.NeutralDesc} {
		if d != "" {
			return d
		}
	}
	return ""
}

func (e Event) legacySchema() bool {
	return e.Action == "" && e.MsgType != 0
}
