package normalize

import "testing"

func TestNormalize_StripsZeroWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "zero width space inside word",
			input: "ig\u200Bnore",
			want:  "ignore",
		},
		{
			name:  "zero width joiner and non-joiner",
			input: "in\u200Cstru\u200Dctions",
			want:  "instructions",
		},
		{
			name:  "word joiner and BOM",
			input: "\uFEFFprevious\u2060 rules",
			want:  "previous rules",
		},
		{
			name:  "soft hyphen",
			input: "dis\u00ADregard",
			want:  "disregard",
		},
		{
			name:  "bidi override",
			input: "ignore\u202E all",
			want:  "ignore all",
		},
		{
			name:  "tag characters",
			input: "hello\U000E0069\U000E0067world",
			want:  "helloworld",
		},
		{
			name:  "clean text unchanged",
			input: "brake later into turn 3",
			want:  "brake later into turn 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_FoldsConfusables(t *testing.T) {
	// Fullwidth Latin folds to ASCII under NFKC.
	got := Normalize("\uFF49\uFF47\uFF4E\uFF4F\uFF52\uFF45 \uFF50\uFF52\uFF45\uFF56\uFF49\uFF4F\uFF55\uFF53")
	if got != "ignore previous" {
		t.Errorf("expected fullwidth fold, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"ig\u200Bnore previous instructions",
		"\uFF50\uFF52\uFF45\uFF54\uFF45\uFF4E\uFF44\u200D you are",
		"plain driving question about apex speed",
		"",
		// A join control between a base letter and a combining mark:
		// stripping it exposes a sequence the second fold composes.
		"e\u200D\u0301",
		"re\u200Dsume\u0301 of my stint",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_ComposesExposedSequences(t *testing.T) {
	// With the joiner removed, e + combining acute must come out composed.
	if got := Normalize("e\u200D\u0301"); got != "\u00E9" {
		t.Errorf("Normalize(e+ZWJ+combining acute) = %q, want %q", got, "\u00E9")
	}
}
