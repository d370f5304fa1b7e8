// Package rules holds the driving ground-truth document the guardrail
// auditor checks generated reports against. The document is a flat list of
// cause-effect facts; a report fails the audit when it asserts the opposite
// of any of them.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// Document is the fixed body of domain facts embedded into validation
// prompts.
type Document struct {
	Rules []string `yaml:"rules"`
}

// Default returns the embedded rules document. The embedded file is part of
// the build, so a parse failure here is a programming error.
func Default() Document {
	doc, err := parse(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded rules document invalid: %v", err))
	}
	return doc
}

// Load reads a rules document from a YAML file. Callers fall back to
// Default on error; the guard layer never refuses to start over a missing
// rules override.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read rules file: %w", err)
	}

	doc, err := parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return doc, nil
}

func parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	if len(doc.Rules) == 0 {
		return Document{}, fmt.Errorf("rules document contains no rules")
	}
	return doc, nil
}

// Text renders the document as a numbered list for prompt embedding.
func (d Document) Text() string {
	var b strings.Builder
	for i, r := range d.Rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}
