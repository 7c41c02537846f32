package calculator

// Threshold is the largest value that still counts toward a sum.
const Threshold = 1000

// Breakdown exposes each stage of a calculation.
type Breakdown struct {
	Delimiters []string `json:"delimiters"`
	Custom     bool     `json:"custom"`  // delimiters came from a header
	Numbers    []int    `json:"numbers"` // every parsed value, in input order
	Ignored    []int    `json:"ignored"` // values above Threshold
	Sum        int      `json:"sum"`
}

// Sum adds the numbers in input. See the package documentation for the
// accepted format.
func Sum(input string) (int, error) {
	b, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return b.Sum, nil
}

// Parse runs the full pipeline and returns its intermediate results. On
// error the returned Breakdown is the zero value.
func Parse(input string) (Breakdown, error) {
	delims, section, custom, err := extractDelimiters(input)
	if err != nil {
		return Breakdown{}, err
	}

	numbers, err := tokenize(section, delims)
	if err != nil {
		return Breakdown{}, err
	}

	if err := rejectNegatives(numbers); err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		Delimiters: delims,
		Custom:     custom,
		Numbers:    numbers,
	}
	for _, n := range numbers {
		if n > Threshold {
			b.Ignored = append(b.Ignored, n)
			continue
		}
		b.Sum += n
	}
	return b, nil
}

func rejectNegatives(numbers []int) error {
	var negatives []int
	for _, n := range numbers {
		if n < 0 {
			negatives = append(negatives, n)
		}
	}
	if len(negatives) > 0 {
		return &NegativesError{Values: negatives}
	}
	return nil
}
