package task

import (
	"fmt"
	"time"

	"github.com/taskfs/taskfs/engine/core"
)

// -----------------------------------------------------------------------------
// Normalization
// -----------------------------------------------------------------------------

// Rule rewrites one parameter before path construction so semantically
// equivalent inputs collapse onto a single canonical output. The substitute
// must be a pure function of the current parameter values (it may read other
// parameters, never external mutable state) and idempotent: applied to its
// own output it leaves the value unchanged.
type Rule struct {
	Param      string
	Substitute func(params *Params) (string, error)
}

// Normalize applies each rule whose parameter is present; absent parameters
// are skipped without error. A rule declared without an implemented
// substitute fails with a missing-capability error rather than silently
// passing the raw value through, which would defeat deduplication.
//
// The input is never mutated; substitutes observe the original values even
// when several rules apply.
func Normalize(params *Params, rules []Rule) (*Params, error) {
	normalized := params.Clone()
	for _, rule := range rules {
		if _, ok := params.Get(rule.Param); !ok {
			continue
		}
		if rule.Substitute == nil {
			return nil, core.NewMissingCapabilityError(rule.Param)
		}
		value, err := rule.Substitute(params)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize parameter %q: %w", rule.Param, err)
		}
		normalized.Set(rule.Param, value)
	}
	return normalized, nil
}

// DateLayout is the wire format for date-valued parameters.
const DateLayout = "2006-01-02"

// FirstOfMonth returns the canonical month-collapse rule: any date maps to
// the first day of its month, so a month's worth of daily invocations share
// one output path.
func FirstOfMonth(param string) Rule {
	return Rule{
		Param: param,
		Substitute: func(params *Params) (string, error) {
			raw, _ := params.Get(param)
			date, err := time.Parse(DateLayout, raw)
			if err != nil {
				return "", fmt.Errorf("failed to parse date %q: %w", raw, err)
			}
			first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
			return first.Format(DateLayout), nil
		},
	}
}
