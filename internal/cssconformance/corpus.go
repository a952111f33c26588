// Package cssconformance runs hand-authored alternating
// input/expected-result JSON corpora, in the css-parsing-tests format,
// against the csssyntax package, encoding actual results in the same JSON shape so a
// single almost-equals comparison covers every corpus.
package cssconformance

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Case is one input/expected pair from a corpus file.
type Case struct {
	Input    string
	Expected string // raw JSON text, compared with AlmostEqual
}

// ParseCorpus reads a corpus file's top-level JSON array, which alternates
// a JSON string input with its expected JSON result, per original_source's
// run_raw_json_tests.
func ParseCorpus(jsonText string) ([]Case, error) {
	result := gjson.Parse(jsonText)
	if !result.IsArray() {
		return nil, fmt.Errorf("cssconformance: corpus is not a JSON array")
	}
	entries := result.Array()
	if len(entries)%2 != 0 {
		return nil, fmt.Errorf("cssconformance: corpus has an odd number of entries")
	}
	cases := make([]Case, 0, len(entries)/2)
	for i := 0; i < len(entries); i += 2 {
		input := entries[i]
		if input.Type != gjson.String {
			return nil, fmt.Errorf("cssconformance: entry %d is not a JSON string", i)
		}
		cases = append(cases, Case{Input: input.String(), Expected: entries[i+1].Raw})
	}
	return cases, nil
}
