package models

import (
	"net/url"
	"testing"
)

func TestFormInputQuery(t *testing.T) {
	tests := []struct {
		name  string
		input FormInput
		want  string
	}{
		{"unset defaults to 0", FormInput{Wikilink: "Cat"}, "wikilink=Cat&check=0"},
		{"no is 0", FormInput{Wikilink: "Cat", Choice: ChoiceNo}, "wikilink=Cat&check=0"},
		{"yes is 1", FormInput{Wikilink: "Cat", Choice: ChoiceYes}, "wikilink=Cat&check=1"},
		{"link escaped", FormInput{Wikilink: "https://en.wikipedia.org/wiki/Cat"}, "wikilink=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FCat&check=0"},
		{"spaces and parentheses", FormInput{Wikilink: "Mercury (planet)", Choice: ChoiceYes}, "wikilink=Mercury%20(planet)&check=1"},
		{"plus and marks", FormInput{Wikilink: "C++ isn't *it*!"}, "wikilink=C%2B%2B%20isn't%20*it*!&check=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Query().Encode(); got != tt.want {
				t.Errorf("Query().Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseChoice(t *testing.T) {
	for in, want := range map[string]Choice{"yes": ChoiceYes, "no": ChoiceNo, "": ChoiceUnset, "maybe": ChoiceUnset} {
		if got := ParseChoice(in); got != want {
			t.Errorf("ParseChoice(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery(url.Values{"wikilink": {"Cat"}, "check": {"1"}})
	if q.Wikilink != "Cat" || q.Check != 1 {
		t.Errorf("ParseQuery() = %+v", q)
	}
	q = ParseQuery(url.Values{"wikilink": {"Cat"}, "check": {"7"}})
	if q.Check != 0 {
		t.Errorf("ParseQuery() with bad check = %+v, want check 0", q)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, link := range []string{"Mercury (planet)", "Duchy of Normandy & more", "a+b=c", "Ünïcode/100%"} {
		want := Query{Wikilink: link, Check: 1}
		values, err := url.ParseQuery(want.Encode())
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", want.Encode(), err)
		}
		if got := ParseQuery(values); got != want {
			t.Errorf("round trip of %q = %+v, want %+v", link, got, want)
		}
	}
}
