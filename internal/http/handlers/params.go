package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gookit/validate"
)

// Query parameter shapes. Defaults are applied before validation, so a zero
// count only reaches the validator when the caller sent one.

type listQuery struct {
	Team      string `validate:"maxLen:3"`
	Position  string `validate:"in:PG,SG,SF,PF,C"`
	MinPoints float64
	Limit     int `validate:"required|min:1|max:500"`
	Refresh   bool
}

type countQuery struct {
	Count int `validate:"required|min:1|max:100"`
}

type randomQuery struct {
	Count int `validate:"required|min:1|max:10"`
}

type rolePlayersQuery struct {
	Count int `validate:"required|min:1|max:50"`
}

type searchQuery struct {
	Query string `validate:"required|minLen:1"`
	Limit int    `validate:"required|min:1|max:100"`
}

type positionQuery struct {
	Position string `validate:"required|in:PG,SG,SF,PF,C"`
	Limit    int    `validate:"required|min:1|max:200"`
	ForDraft bool
}

type journeyQuery struct {
	Count    int `validate:"required|min:1|max:50"`
	MinTeams int `validate:"required|min:2|max:5"`
}

func validateQuery(q any) error {
	v := validate.Struct(q)
	if v.Validate() {
		return nil
	}
	return errors.New(v.Errors.One())
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}

func boolParam(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return b, nil
}
