package stint

// StatLine holds the per-category counts aggregated over one segment window.
type StatLine struct {
	FGM  int `json:"fgm"`
	FGA  int `json:"fga"`
	FG3M int `json:"fg3m"`
	FG3A int `json:"fg3a"`
	FTM  int `json:"ftm"`
	FTA  int `json:"fta"`
	OREB int `json:"oreb"`
	REB  int `json:"reb"`
	AST  int `json:"ast"`
	BLK  int `json:"blk"`
	STL  int `json:"stl"`
	TOV  int `json:"tov"`
	PF   int `json:"pf"`
	PTS  int `json:"pts"`
}

// Line is one finished stint row: a segment's placement inside its period
// plus the counts and scoring differential accumulated there. Lines for a
// player are emitted in chronological order.
type Line struct {
	Period    int     `json:"period"`
	InTime    string  `json:"inTime"`
	OutTime   string  `json:"outTime"`
	Minutes   float64 `json:"minutes"`
	PlusMinus int     `json:"plusMinus"`
	StatLine
}
