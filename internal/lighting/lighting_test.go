package lighting

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		display string
		cues    []string
	}{
		{
			name:    "no cues",
			input:   "  Just words.  ",
			display: "Just words.",
			cues:    []string{},
		},
		{
			name:    "leading and inline cues",
			input:   "*soft golden glow* I feel adrift. *gentle pulse* I am enough.",
			display: "I feel adrift.  I am enough.",
			cues:    []string{"soft golden glow", "gentle pulse"},
		},
		{
			name:    "non-greedy",
			input:   "*a* middle *b*",
			display: "middle",
			cues:    []string{"a", "b"},
		},
		{
			name:    "empty cue",
			input:   "before ** after",
			display: "before  after",
			cues:    []string{""},
		},
		{
			name:    "unmatched delimiter stays",
			input:   "*red* and a stray * star",
			display: "and a stray * star",
			cues:    []string{"red"},
		},
		{
			name:    "multiline cue is not matched",
			input:   "*one\ntwo*",
			display: "*one\ntwo*",
			cues:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Display != tt.display {
				t.Errorf("display = %q, want %q", got.Display, tt.display)
			}
			if !reflect.DeepEqual(got.Cues, tt.cues) {
				t.Errorf("cues = %q, want %q", got.Cues, tt.cues)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"*flickering with uncertainty* This pain in my chest... *angry red energy*\n\nI am not disposable. *soft golden glow*",
		"**",
		"a*b*c*d",
		"  *x*  ",
	}
	for _, in := range inputs {
		resp := Parse(in)
		if got := Reassemble(resp.Segments); got != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}

		var plain strings.Builder
		var cues []string
		for _, s := range resp.Segments {
			if s.Cue {
				cues = append(cues, s.Text)
			} else {
				plain.WriteString(s.Text)
			}
		}
		if strings.TrimSpace(plain.String()) != resp.Display {
			t.Errorf("display %q does not match plain segments of %q", resp.Display, in)
		}
		if len(cues) != len(resp.Cues) {
			t.Errorf("segment cues %d != parsed cues %d", len(cues), len(resp.Cues))
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		cue  string
		want Color
	}{
		{"angry red energy", ColorRed},
		{"FIRE bursts", ColorRed},
		{"dim blue wash", ColorBlue},
		{"soft golden glow", ColorGold},
		{"gentle pulse", ColorGold},
		{"flickering with uncertainty", ColorWhite},
	}
	for _, tt := range tests {
		if got := Classify(tt.cue); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.cue, got, tt.want)
		}
	}
}

func TestCues(t *testing.T) {
	got := Cues([]string{" gentle pulse ", "angry red energy"})
	want := []Cue{
		{Index: 0, Text: "gentle pulse", Color: ColorGold},
		{Index: 1, Text: "angry red energy", Color: ColorRed},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
