package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/golcg/internal/comb"
)

// JSONCombination is the tooling-neutral form of one combination.
type JSONCombination struct {
	Expression string             `json:"expression"`
	Factors    map[string]float64 `json:"factors"`
}

// WriteJSON writes the combinations as a situation → name → combination
// mapping. Keys marshal sorted, and the zero-padded names sort in
// enumeration order, so the output is reproducible byte for byte.
func WriteJSON(w io.Writer, results comb.Results) error {
	doc := make(map[string]map[string]JSONCombination, len(results))
	for situation, combinations := range results {
		bySituation := make(map[string]JSONCombination, len(combinations))
		for _, c := range combinations {
			bySituation[c.Name] = JSONCombination{
				Expression: c.Expr(),
				Factors:    c.Dict(),
			}
		}
		doc[situation.String()] = bySituation
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal combinations: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteJSONFile writes the JSON form to a file with the same close
// discipline as WriteScriptFile.
func WriteJSONFile(path string, results comb.Results) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteJSON(f, results)
}
