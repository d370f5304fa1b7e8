package modelout

import "testing"

type verdict struct {
	Passed     bool     `json:"passed"`
	Violations []string `json:"violations"`
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		want    verdict
	}{
		{
			name:    "raw json",
			content: `{"passed": true, "violations": []}`,
			want:    verdict{Passed: true, Violations: []string{}},
		},
		{
			name:    "leading and trailing whitespace",
			content: "\n  {\"passed\": false, \"violations\": [\"contradicts braking rule\"]}  \n",
			want:    verdict{Passed: false, Violations: []string{"contradicts braking rule"}},
		},
		{
			name:    "json code fence",
			content: "```json\n{\"passed\": true, \"violations\": []}\n```",
			want:    verdict{Passed: true, Violations: []string{}},
		},
		{
			name:    "bare code fence",
			content: "```\n{\"passed\": false, \"violations\": [\"x\"]}\n```",
			want:    verdict{Passed: false, Violations: []string{"x"}},
		},
		{
			name:    "surrounding prose",
			content: "Here is my assessment:\n{\"passed\": true, \"violations\": []}\nLet me know if you need more detail.",
			want:    verdict{Passed: true, Violations: []string{}},
		},
		{
			name:    "prose and fence together",
			content: "Sure! ```json\n{\"passed\": true, \"violations\": []}\n``` hope that helps",
			want:    verdict{Passed: true, Violations: []string{}},
		},
		{
			name:    "no json at all",
			content: "I cannot evaluate this report.",
			wantErr: true,
		},
		{
			name:    "empty content",
			content: "",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			content: `{"passed": true`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got verdict
			err := Unmarshal(tt.content, &got)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if got.Passed != tt.want.Passed {
				t.Errorf("Passed = %v, want %v", got.Passed, tt.want.Passed)
			}
			if len(got.Violations) != len(tt.want.Violations) {
				t.Errorf("Violations = %v, want %v", got.Violations, tt.want.Violations)
			}
		})
	}
}

func TestUnmarshal_NestedObject(t *testing.T) {
	content := `The verdict follows. {"passed": false, "violations": ["claim {braking} is wrong"]}`

	var got verdict
	if err := Unmarshal(content, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Passed {
		t.Error("expected passed=false")
	}
	if len(got.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got.Violations))
	}
}
