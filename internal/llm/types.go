package llm

import "time"

// Request is a single synchronous completion call. SystemPrompt is optional;
// the classifier and validator leave it empty and carry their instructions
// in the prompt body.
type Request struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

type Response struct {
	Content    string
	StopReason string
}

// CallTimeout bounds every outbound completion so a slow model cannot stall
// a chat turn or a report audit.
const CallTimeout = 30 * time.Second
