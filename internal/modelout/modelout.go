// Package modelout extracts structured JSON verdicts from free-form model
// text. Models are told to answer in raw JSON but routinely wrap it in
// markdown fences or surrounding prose, so parsing tries progressively
// looser strategies: the trimmed text as-is, then the body of a fenced code
// block, then the outermost brace-delimited object.
package modelout

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Unmarshal decodes the first parseable JSON object found in content into v.
func Unmarshal(content string, v any) error {
	for _, candidate := range candidates(content) {
		if json.Unmarshal([]byte(candidate), v) == nil {
			return nil
		}
	}
	return fmt.Errorf("no parseable JSON object in model output")
}

func candidates(content string) []string {
	var out []string

	trimmed := strings.TrimSpace(content)
	if trimmed != "" {
		out = append(out, trimmed)
	}

	if fenced, ok := stripCodeFence(trimmed); ok {
		out = append(out, fenced)
	}

	if braced, ok := outermostObject(trimmed); ok {
		out = append(out, braced)
	}

	return out
}

// stripCodeFence returns the body of a leading ```-fenced block.
func stripCodeFence(content string) (string, bool) {
	if !strings.HasPrefix(content, "```") {
		return "", false
	}

	firstNewline := strings.Index(content, "\n")
	if firstNewline == -1 {
		return "", false
	}

	closing := strings.LastIndex(content, "```")
	if closing <= firstNewline {
		return "", false
	}

	return strings.TrimSpace(content[firstNewline+1 : closing]), true
}

// outermostObject returns the substring from the first '{' to the last '}',
// which tolerates prose on either side of the JSON payload.
func outermostObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}
