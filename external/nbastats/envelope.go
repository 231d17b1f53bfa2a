package nbastats

import (
	"fmt"
	"strconv"
	"strings"
)

// The stats API wraps every endpoint in the same envelope. Most responses
// carry a "resultSets" array; a few older endpoints ship a single
// "resultSet" object instead, so both shapes are accepted.
type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

type envelope struct {
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

func (e envelope) table(name string) (table, error) {
	for _, rs := range e.ResultSets {
		if strings.EqualFold(rs.Name, name) {
			return newTable(rs), nil
		}
	}
	if e.ResultSet != nil {
		return newTable(*e.ResultSet), nil
	}
	if len(e.ResultSets) == 0 {
		return table{}, fmt.Errorf("response has neither resultSets nor resultSet")
	}
	return table{}, fmt.Errorf("result set %q not found", name)
}

// table gives header-keyed access to an untyped rowSet.
type table struct {
	index map[string]int
	rows  [][]any
}

func newTable(rs resultSet) table {
	index := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		index[strings.ToUpper(h)] = i
	}
	return table{index: index, rows: rs.RowSet}
}

func (t table) cell(row []any, column string) any {
	i, ok := t.index[strings.ToUpper(column)]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}

func (t table) str(row []any, column string) string {
	switch v := t.cell(row, column).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (t table) i64(row []any, column string) int64 {
	switch v := t.cell(row, column).(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func (t table) num(row []any, column string) int {
	return int(t.i64(row, column))
}
