package archive

import "errors"

// ErrNotFound marks a document that is not in the store.
var ErrNotFound = errors.New("document not found")

// IndexGame is the per-game summary kept in the date index.
type IndexGame struct {
	GameID    string `json:"gameId"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
}

// IndexEntry is one date's worth of games.
type IndexEntry struct {
	Date  string      `json:"date"`
	Games []IndexGame `json:"games"`
}

// Index is the top-level catalog document. Dates sort descending, most
// recent first.
type Index struct {
	Dates []IndexEntry `json:"dates"`
}
