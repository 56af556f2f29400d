package index

import (
	"reflect"
	"testing"
)

func TestParseTerms(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"rock", []string{"rock"}},
		{"Rock Jazz", []string{"rock", "jazz"}},
		{"  rock\t jazz ", []string{"rock", "jazz"}},
		{`"daft punk"`, []string{"daft punk"}},
		{`"Daft Punk" homework`, []string{"daft punk", "homework"}},
		{`a "b c" d`, []string{"a", "b c", "d"}},
		{`""`, nil},
		{`"unterminated group`, []string{"unterminated group"}},
	}

	for _, c := range cases {
		if got := ParseTerms(c.query); !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseTerms(%q) = %v, want %v", c.query, got, c.want)
		}
	}
}
