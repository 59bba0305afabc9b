package faq

import (
	"reflect"
	"testing"
)

func TestKeywordList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma delimited with spaces",
			raw:  "return, refund, policy",
			want: []string{"return", "refund", "policy"},
		},
		{
			name: "mixed case folded",
			raw:  "Shipping, DELIVERY",
			want: []string{"shipping", "delivery"},
		},
		{
			name: "empty tokens dropped",
			raw:  "track,, ,order status",
			want: []string{"track", "order status"},
		},
		{
			name: "empty string",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeywordList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"What's your return policy?", []string{"what", "s", "your", "return", "policy"}},
		{"HELLO world", []string{"hello", "world"}},
		{"ship in 3 days", []string{"ship", "in", "3", "days"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if len(got) != len(tt.want) {
			t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestMatch(t *testing.T) {
	entries := []Entry{
		{
			Question: "What is your return policy?",
			Answer:   "7-day returns for unused items.",
			Keywords: KeywordList("return, refund, policy, exchange"),
		},
		{
			Question: "How long does shipping take?",
			Answer:   "3-7 business days within Algeria.",
			Keywords: KeywordList("shipping, delivery, time, arrive"),
		},
	}

	t.Run("best scorer wins", func(t *testing.T) {
		got := Match("what is your refund policy", entries)
		if got == nil {
			t.Fatal("Match returned nil, want return-policy entry")
		}
		if got.Question != entries[0].Question {
			t.Errorf("Match picked %q, want %q", got.Question, entries[0].Question)
		}
	})

	t.Run("no overlap returns nil", func(t *testing.T) {
		if got := Match("do you sell gift cards", entries); got != nil {
			t.Errorf("Match = %q, want nil", got.Question)
		}
	})

	t.Run("duplicate tokens count once", func(t *testing.T) {
		// "refund refund refund" still scores 1, so shipping's two
		// distinct hits must win.
		got := Match("refund refund refund shipping delivery", entries)
		if got == nil || got.Question != entries[1].Question {
			t.Fatalf("Match should favor distinct-token overlap, got %+v", got)
		}
	})

	t.Run("ties keep first seen", func(t *testing.T) {
		tied := []Entry{
			{Question: "first", Answer: "a", Keywords: []string{"widget"}},
			{Question: "second", Answer: "b", Keywords: []string{"widget"}},
		}
		got := Match("tell me about the widget", tied)
		if got == nil || got.Question != "first" {
			t.Fatalf("Match tie-break = %+v, want first entry", got)
		}
	})

	t.Run("empty entries", func(t *testing.T) {
		if got := Match("anything at all", nil); got != nil {
			t.Errorf("Match on empty entries = %+v, want nil", got)
		}
	})
}
