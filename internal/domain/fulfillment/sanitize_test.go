package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean string untouched", input: "John Smith", want: "John Smith"},
		{name: "forward slash", input: "a/b", want: "axb"},
		{name: "backslash", input: `a\b`, want: "axb"},
		{name: "asterisk", input: "a*b", want: "axb"},
		{name: "question mark", input: "a?b", want: "axb"},
		{name: "colon", input: "size: 150", want: "sizex 150"},
		{name: "double quote", input: `say "hi"`, want: "say xhix"},
		{name: "angle brackets", input: "<name>", want: "xnamex"},
		{name: "pipe", input: "a|b", want: "axb"},
		{name: "every invalid character", input: `\/*?:"<>|`, want: "xxxxxxxxx"},
		{name: "mixed", input: `O'Brien / Co. "Ltd"`, want: `O'Brien x Co. xLtdx`},
		{name: "empty", input: "", want: ""},
		{name: "unicode preserved", input: "Łukasz Müller", want: "Łukasz Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}
