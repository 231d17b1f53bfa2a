package nbastats

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hoopsight/stintline/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		BaseURL:    srv.URL,
		MaxRetries: 1,
		RateDelay:  -1,
		RetryWait:  time.Millisecond,
		Logger:     logging.NewNop(),
	})
}

const scoreboardPayload = `{
	"resultSets": [
		{
			"name": "GameHeader",
			"headers": ["GAME_ID", "HOME_TEAM_ID", "VISITOR_TEAM_ID", "GAME_STATUS_TEXT"],
			"rowSet": [["0022300001", 1610612738, 1610612752, "Final"]]
		},
		{
			"name": "LineScore",
			"headers": ["GAME_ID", "TEAM_ID", "TEAM_ABBREVIATION", "TEAM_NAME", "PTS"],
			"rowSet": [
				["0022300001", 1610612738, "BOS", "Celtics", 112],
				["0022300001", 1610612752, "NYK", "Knicks", 105]
			]
		}
	]
}`

func TestClient_Scoreboard(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Header.Get("Referer") == "" || r.Header.Get("User-Agent") == "" {
			t.Error("browser headers missing")
		}
		_, _ = w.Write([]byte(scoreboardPayload))
	}))

	sb, err := client.Scoreboard(t.Context(), "2024-01-15")
	if err != nil {
		t.Fatalf("fetch scoreboard failed: %v", err)
	}
	if gotPath != "/scoreboardv2" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if len(sb.Headers) != 1 || sb.Headers[0].GameID != "0022300001" {
		t.Fatalf("unexpected headers: %+v", sb.Headers)
	}
	if len(sb.LineScores) != 2 || sb.LineScores[0].Tricode != "BOS" || sb.LineScores[1].Points != 105 {
		t.Fatalf("unexpected line scores: %+v", sb.LineScores)
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(scoreboardPayload))
	}))

	if _, err := client.Scoreboard(t.Context(), "2024-01-15"); err != nil {
		t.Fatalf("fetch after retry failed: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("unexpected attempt count: %d", attempts)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))

	if _, err := client.Scoreboard(t.Context(), "2024-01-15"); err == nil {
		t.Fatal("expected error for status 400")
	}
	if attempts != 1 {
		t.Fatalf("client error must not retry, attempts=%d", attempts)
	}
}

func TestClient_Rotation(t *testing.T) {
	payload := `{
		"resultSets": [
			{
				"name": "AwayTeam",
				"headers": ["PERSON_ID", "PLAYER_FIRST", "PLAYER_LAST", "IN_TIME_REAL", "OUT_TIME_REAL", "PT_DIFF"],
				"rowSet": [[9, "Tom", "Jones", 0, 720000, -3]]
			},
			{
				"name": "HomeTeam",
				"headers": ["PERSON_ID", "PLAYER_FIRST", "PLAYER_LAST", "IN_TIME_REAL", "OUT_TIME_REAL", "PT_DIFF"],
				"rowSet": [[7, "Jayson", "Smith", 0, 606000, 5]]
			}
		]
	}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))

	rot, err := client.Rotation(t.Context(), "0022300001")
	if err != nil {
		t.Fatalf("fetch rotation failed: %v", err)
	}

	// Millisecond feed values come back in ticks.
	if rot.Home[0].InTick != 0 || rot.Home[0].OutTick != 6060 {
		t.Fatalf("home ticks not normalized: %+v", rot.Home[0])
	}
	if rot.Away[0].OutTick != 7200 || rot.Away[0].PointDiff != -3 {
		t.Fatalf("unexpected away row: %+v", rot.Away[0])
	}
}

func TestClient_PlayByPlayLegacy(t *testing.T) {
	payload := `{
		"resultSet": {
			"name": "PlayByPlay",
			"headers": ["EVENTNUM", "PERIOD", "PCTIMESTRING", "EVENTMSGTYPE", "EVENTMSGACTIONTYPE", "HOMEDESCRIPTION", "VISITORDESCRIPTION", "NEUTRALDESCRIPTION", "SCORE", "PLAYER1_ID", "PLAYER2_ID"],
			"rowSet": [[1, 1, "11:00", 1, 1, "Smith Layup (2 PTS)", null, null, "0 - 2", 7, 0]]
		}
	}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))

	events, err := client.PlayByPlay(t.Context(), "0022300001")
	if err != nil {
		t.Fatalf("fetch play-by-play failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("unexpected event count: %d", len(events))
	}
	e := events[0]
	if e.MsgType != 1 || e.Clock != "11:00" || e.PersonID != 7 || e.ScoreText != "0 - 2" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestClient_PlayByPlayFallsBackToV3(t *testing.T) {
	v3 := `{
		"game": {
			"actions": [
				{
					"actionNumber": 4,
					"period": 1,
					"clock": "PT11M30.00S",
					"actionType": "2pt",
					"shotResult": "Made",
					"scoreHome": "2",
					"scoreAway": "0",
					"personId": 7,
					"assistPersonId": 8,
					"description": "J. Smith driving layup"
				}
			]
		}
	}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/playbyplayv2" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(v3))
	}))

	events, err := client.PlayByPlay(t.Context(), "0022300001")
	if err != nil {
		t.Fatalf("fetch play-by-play failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("unexpected event count: %d", len(events))
	}
	e := events[0]
	if e.Action != "2pt" || e.ShotResult != "Made" || e.AssistPersonID != 8 {
		t.Fatalf("unexpected v3 event: %+v", e)
	}
	if e.Clock != "11:30" {
		t.Fatalf("iso clock not converted: %s", e.Clock)
	}
}

func TestParseISOClock(t *testing.T) {
	cases := []struct{ in, want string }{
		{"PT11M30.00S", "11:30"},
		{"PT12M00.00S", "12:00"},
		{"PT00M05.40S", "0:05"},
		{"5:30", "5:30"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := parseISOClock(tc.in); got != tc.want {
			t.Fatalf("parseISOClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
