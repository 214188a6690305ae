package parser

import (
	"testing"
)

func FuzzCompile(f *testing.F) {
	seeds := []string{
		"2+3*4",
		"2*(4+3)",
		"(1+(2+3))*2",
		"0.1+0.2",
		"8/4/2",
		"2^3^2",
		"",
		"(",
		")",
		"1.2.3",
		"1++2",
		"((((((((((1))))))))))",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		// Must never panic; errors are expected for malformed input.
		_, _ = Compile(input)
	})
}
