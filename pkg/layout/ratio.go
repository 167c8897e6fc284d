package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/multicolumn/pkg/errors"
)

// RatioTotal is the sum custom ratios must reach.
const RatioTotal = 100

// SumError is the cause of a MALFORMED_RATIO_INPUT error for input made of
// valid whole numbers that do not add up to [RatioTotal].
type SumError struct {
	Sum int
}

func (e *SumError) Error() string {
	return fmt.Sprintf("sum %d, want %d", e.Sum, RatioTotal)
}

// ParseRatios parses custom ratio input such as "30/70" or "25, 50, 25".
//
// Every part must be a positive base-10 integer and the parts must sum to
// exactly 100. Any failure is a MALFORMED_RATIO_INPUT error; callers must not
// insert anything in that case.
func ParseRatios(input string) ([]float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New(errors.ErrCodeMalformedRatioInput, "ratio input is empty")
	}

	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == '/' || r == ','
	})
	if len(parts) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedRatioInput, "ratio input %q has no values", input)
	}

	ratios := make([]float64, 0, len(parts))
	sum := 0
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.New(errors.ErrCodeMalformedRatioInput, "%q is not a whole number", p)
		}
		if n <= 0 {
			return nil, errors.New(errors.ErrCodeMalformedRatioInput, "ratio %d must be greater than 0", n)
		}
		sum += n
		ratios = append(ratios, float64(n))
	}

	if sum != RatioTotal {
		return nil, errors.Wrap(errors.ErrCodeMalformedRatioInput, &SumError{Sum: sum},
			"ratios must sum to %d, got %d", RatioTotal, sum)
	}
	return ratios, nil
}

// FormatRatios renders ratios the way [ParseRatios] reads them ("30/70").
func FormatRatios(ratios []float64) string {
	parts := make([]string, len(ratios))
	for i, r := range ratios {
		parts[i] = formatRatio(r)
	}
	return strings.Join(parts, "/")
}
