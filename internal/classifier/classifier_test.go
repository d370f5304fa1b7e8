package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/slazien/trackguard/internal/llm"
)

// fakeClient is a hand-rolled llm.Client for tests.
type fakeClient struct {
	response    *llm.Response
	err         error
	wasCalled   bool
	lastRequest llm.Request
}

func (f *fakeClient) Complete(ctx context.Context, request llm.Request) (*llm.Response, error) {
	f.wasCalled = true
	f.lastRequest = request
	return f.response, f.err
}

func (f *fakeClient) CompleteWithRetry(ctx context.Context, request llm.Request) (*llm.Response, error) {
	return f.Complete(ctx, request)
}

func TestClassify(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name        string
		response    *llm.Response
		err         error
		wantOnTopic bool
		wantErr     bool
	}{
		{
			name:        "on topic",
			response:    &llm.Response{Content: `{"on_topic": true}`},
			wantOnTopic: true,
		},
		{
			name:        "off topic",
			response:    &llm.Response{Content: `{"on_topic": false}`},
			wantOnTopic: false,
		},
		{
			name:        "fenced verdict",
			response:    &llm.Response{Content: "```json\n{\"on_topic\": true}\n```"},
			wantOnTopic: true,
		},
		{
			name:    "service error",
			err:     errors.New("throttled"),
			wantErr: true,
		},
		{
			name:     "unparsable verdict",
			response: &llm.Response{Content: "the message looks fine to me"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: tt.response, err: tt.err}
			c := New(client, &logger)

			onTopic, err := c.Classify(context.Background(), "how late should I brake into turn 1?")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if onTopic != tt.wantOnTopic {
				t.Errorf("onTopic = %v, want %v", onTopic, tt.wantOnTopic)
			}
		})
	}
}

func TestClassify_PromptEmbedsMessage(t *testing.T) {
	logger := zerolog.Nop()
	client := &fakeClient{response: &llm.Response{Content: `{"on_topic": true}`}}
	c := New(client, &logger)

	if _, err := c.Classify(context.Background(), "where should I apex turn 4?"); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if !client.wasCalled {
		t.Fatal("expected completion call")
	}
	if !strings.Contains(client.lastRequest.Prompt, "where should I apex turn 4?") {
		t.Error("prompt does not embed the user message")
	}
	if client.lastRequest.Temperature != 0.0 {
		t.Errorf("expected temperature 0, got %f", client.lastRequest.Temperature)
	}
}
