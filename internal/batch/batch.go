package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/zhulik/starmatch/pkg/starmatch"
	"go.yaml.in/yaml/v3"
)

var (
	ErrInvalidFile       = errors.New("invalid batch file")
	ErrExpectationFailed = errors.New("expectation failed")
)

// Case is a single match to run. Text and pattern are left untyped so that a
// non-string value surfaces as invalid input for that case only.
type Case struct {
	Text        any    `yaml:"text"`
	Pattern     any    `yaml:"pattern"`
	Algorithm   string `yaml:"algorithm,omitempty"`
	Expect      *int   `yaml:"expect,omitempty"`
	ExpectError string `yaml:"expect_error,omitempty"`
}

// File is the on-disk batch format. JSON files are accepted as well since
// YAML is a superset of JSON.
type File struct {
	Algorithm string `yaml:"algorithm,omitempty"`
	Cases     []Case `yaml:"cases"`
}

type Outcome struct {
	Case
	Algorithm string
	Index     int
	Err       error
}

// Passed reports whether the outcome satisfies the case's expectations.
// Cases without expectations pass unless they fail.
func (o Outcome) Passed() bool {
	switch {
	case o.ExpectError != "":
		return starmatch.Kind(o.Err) == o.ExpectError
	case o.Err != nil:
		return false
	case o.Expect != nil:
		return *o.Expect == o.Index
	default:
		return true
	}
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	return Parse(data)
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return f, nil
}

// Run matches every case. The case algorithm wins over the file algorithm,
// which wins over fallback.
func Run(f File, fallback starmatch.Algorithm) []Outcome {
	return lo.Map(f.Cases, func(c Case, _ int) Outcome {
		algorithm := lo.CoalesceOrEmpty(c.Algorithm, f.Algorithm, fallback.String())
		idx, err := starmatch.MatchNamed(c.Text, c.Pattern, algorithm)

		return Outcome{
			Case:      c,
			Algorithm: algorithm,
			Index:     idx,
			Err:       err,
		}
	})
}

// Report renders outcomes as a table and returns ErrExpectationFailed if any
// of them did not pass.
func Report(w io.Writer, outcomes []Outcome) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Text", "Pattern", "Algorithm", "Result", "Status"})

	for i, o := range outcomes {
		result := fmt.Sprint(o.Index)
		if o.Err != nil {
			result = o.Err.Error()
		}

		t.AppendRow(table.Row{i + 1, o.Text, o.Pattern, o.Algorithm, result, lo.Ternary(o.Passed(), "ok", "mismatch")})
	}

	failed := lo.CountBy(outcomes, func(o Outcome) bool { return !o.Passed() })
	t.AppendFooter(table.Row{"", "", "", "", "mismatched", failed})
	t.Render()

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d cases", ErrExpectationFailed, failed, len(outcomes))
	}

	return nil
}
