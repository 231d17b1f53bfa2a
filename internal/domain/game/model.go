package game

// TeamRef identifies one side of a game in the output contracts.
type TeamRef struct {
	Tricode string `json:"tricode" validate:"required"`
	Name    string `json:"name"`
}

// TeamScore is a TeamRef with its final score attached.
type TeamScore struct {
	TeamRef
	Score int `json:"score"`
}

// Summary is one entry of a daily scores document: the game identity with
// both final scores. Immutable once the scoreboard is transformed.
type Summary struct {
	GameID   string    `json:"gameId" validate:"required"`
	Date     string    `json:"date" validate:"required"`
	HomeTeam TeamScore `json:"homeTeam"`
	AwayTeam TeamScore `json:"awayTeam"`
	Status   string    `json:"status"`
}
