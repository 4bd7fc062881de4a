package models

import (
	"net/url"
	"strconv"
	"strings"
)

// Choice is the state of the two mutually exclusive yes/no controls.
type Choice string

const (
	ChoiceUnset Choice = ""
	ChoiceYes   Choice = "yes"
	ChoiceNo    Choice = "no"
)

// ParseChoice maps a submitted radio value onto a Choice. Anything other than
// yes or no counts as unset.
func ParseChoice(v string) Choice {
	switch Choice(v) {
	case ChoiceYes:
		return ChoiceYes
	case ChoiceNo:
		return ChoiceNo
	default:
		return ChoiceUnset
	}
}

// FormInput is the state of the form at the moment it is submitted.
type FormInput struct {
	Wikilink string
	Choice   Choice
}

// Check returns 1 when the affirmative option is selected and 0 otherwise.
func (f FormInput) Check() int {
	if f.Choice == ChoiceYes {
		return 1
	}
	return 0
}

// Query derives the request parameters for both backend endpoints.
func (f FormInput) Query() Query {
	return Query{Wikilink: f.Wikilink, Check: f.Check()}
}

// Query is the {wikilink, check} pair sent to the backend.
type Query struct {
	Wikilink string
	Check    int
}

// componentEscaper turns url.QueryEscape output into encodeURIComponent form.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s the way a browser's encodeURIComponent does:
// spaces become %20 and !'()* stay literal.
func EscapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// Encode renders the query as wikilink=<escaped>&check=<0|1>, keeping that
// parameter order.
func (q Query) Encode() string {
	return "wikilink=" + EscapeComponent(q.Wikilink) + "&check=" + strconv.Itoa(q.Check)
}

// ParseQuery reads the backend query parameters. A missing or malformed check
// value is treated as 0.
func ParseQuery(values url.Values) Query {
	q := Query{Wikilink: values.Get("wikilink")}
	if values.Get("check") == "1" {
		q.Check = 1
	}
	return q
}
