package example

import (
	"fmt"
	"strconv"
)

// Example is the data holder exercised by the example sanity check.
// Computed is derived once at construction time and never recomputed;
// instances are not mutated after New returns.
type Example struct {
	Name     string
	Value    int
	Computed int
}

// New creates an Example with Computed derived as twice the value.
func New(name string, value int) *Example {
	return &Example{
		Name:     name,
		Value:    value,
		Computed: value * 2,
	}
}

// Create is the factory used by the driver and the sanity checks.
func Create() *Example {
	return New("test", 42)
}

// Info returns a formatted summary of the instance.
func (e *Example) Info() string {
	return fmt.Sprintf("Name: %s, Value: %d", e.Name, e.Value)
}

// Calculate multiplies the stored value by the given multiplier.
func (e *Example) Calculate(multiplier float64) float64 {
	return float64(e.Value) * multiplier
}

// FormatResult renders a Calculate result with at least one decimal
// place, so a whole-number product prints as "105.0" rather than "105".
func FormatResult(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, c := range s {
		if c == '.' {
			return s
		}
	}
	return s + ".0"
}
