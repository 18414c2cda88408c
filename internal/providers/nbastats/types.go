package nbastats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// statsResponse is the envelope every stats.nba.com endpoint shares. Most return
// resultSets; a few return a single resultSet object.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// table returns the named result set, or the first one when name is empty.
func (r statsResponse) table(name string) (resultSet, error) {
	sets := r.ResultSets
	if r.ResultSet != nil {
		sets = append(sets, *r.ResultSet)
	}
	for _, set := range sets {
		if name == "" || strings.EqualFold(set.Name, name) {
			return set, nil
		}
	}
	return resultSet{}, fmt.Errorf("result set %q missing", name)
}

// rows pairs each row with a header index so columns are read by name.
func (s resultSet) rows() []row {
	index := make(map[string]int, len(s.Headers))
	for i, h := range s.Headers {
		index[strings.ToUpper(h)] = i
	}
	out := make([]row, 0, len(s.RowSet))
	for _, values := range s.RowSet {
		out = append(out, row{index: index, values: values})
	}
	return out
}

func (s resultSet) hasColumns(cols ...string) error {
	present := make(map[string]bool, len(s.Headers))
	for _, h := range s.Headers {
		present[strings.ToUpper(h)] = true
	}
	for _, c := range cols {
		if !present[c] {
			return fmt.Errorf("result set %q missing column %s", s.Name, c)
		}
	}
	return nil
}

type row struct {
	index  map[string]int
	values []any
}

func (r row) value(col string) any {
	i, ok := r.index[col]
	if !ok || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

func (r row) float(col string) float64 {
	switch v := r.value(col).(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func (r row) int64(col string) int64 {
	if s, ok := r.value(col).(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return int64(r.float(col))
}

func (r row) string(col string) string {
	switch v := r.value(col).(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
