package cssconformance

import (
	"encoding/json"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
)

// AlmostEqual compares two JSON documents the way original_source's
// almost_equals does: numbers within 1e-6, everything else by structural
// equality. Object comparison is unsupported (matching original_source,
// which declares it unimplemented) since no corpus result is ever an
// object.
func AlmostEqual(actual, expected string) bool {
	return almostEqualValues(gjson.Parse(actual), gjson.Parse(expected))
}

func almostEqualValues(a, e gjson.Result) bool {
	if a.Type == gjson.Number && e.Type == gjson.Number {
		return math.Abs(a.Float()-e.Float()) < 1e-6
	}
	if a.Type != e.Type {
		return false
	}
	switch a.Type {
	case gjson.String:
		return a.String() == e.String()
	case gjson.True, gjson.False:
		return a.Bool() == e.Bool()
	case gjson.Null:
		return true
	case gjson.JSON:
		if a.IsArray() {
			if !e.IsArray() {
				return false
			}
			aa, ea := a.Array(), e.Array()
			if len(aa) != len(ea) {
				return false
			}
			for i := range aa {
				if !almostEqualValues(aa[i], ea[i]) {
					return false
				}
			}
			return true
		}
		panic("cssconformance: object comparison not implemented")
	default:
		return false
	}
}

// Diff renders a human-readable structural diff between two JSON documents
// for a failing test's error message.
func Diff(actual, expected string) string {
	var a, e any
	_ = json.Unmarshal([]byte(actual), &a)
	_ = json.Unmarshal([]byte(expected), &e)
	return cmp.Diff(e, a)
}
