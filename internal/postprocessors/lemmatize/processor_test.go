package lemmatize

import (
	"reflect"
	"strings"
	"testing"
)

// trimLemmatizer strips a trailing "s" for predictable tests.
type trimLemmatizer struct{}

func (trimLemmatizer) Name() string { return "trim" }
func (trimLemmatizer) Lemma(token string) string {
	return strings.TrimSuffix(token, "s")
}

func TestProcessor_Name(t *testing.T) {
	if New(trimLemmatizer{}).Name() != "lemmatize" {
		t.Error("expected name 'lemmatize'")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := New(trimLemmatizer{})

	got := p.Process([]string{"films", "plot", "actors"}, nil)
	expected := []string{"film", "plot", "actor"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestProcessor_Process_DoesNotMutateInput(t *testing.T) {
	p := New(trimLemmatizer{})
	input := []string{"films"}

	p.Process(input, nil)
	if input[0] != "films" {
		t.Errorf("input mutated: %v", input)
	}
}
