// Package export renders generated combinations for external consumers.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/golcg/internal/comb"
	"github.com/alexiusacademia/golcg/internal/ec0"
)

// scriptHeader binds the combination container of the XC preprocessor; the
// statements that follow load into it.
const scriptHeader = "combs= preprocessor.getLoadHandler.getLoadCombinations\n"

// WriteScript writes every generated combination as XC loader statements,
// one per line:
//
//	comb= combs.newLoadCombination("ULS00","1.00*G + 1.45*Q")
//
// Situations appear in canonical order, combinations in enumeration order.
func WriteScript(w io.Writer, results comb.Results) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(scriptHeader); err != nil {
		return err
	}
	for _, situation := range ec0.Situations {
		for _, c := range results[situation] {
			if _, err := fmt.Fprintf(bw, "comb= combs.newLoadCombination(%q,%q)\n", c.Name, c.Expr()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteScriptFile writes the script form to a file. The file is closed on
// every exit path; a close failure surfaces unless rendering already failed.
func WriteScriptFile(path string, results comb.Results) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteScript(f, results)
}
