package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/slazien/trackguard/internal/llm"
)

func (c *Client) Complete(ctx context.Context, request llm.Request) (*llm.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, llm.CallTimeout)
	defer cancel()

	messages := []openai.ChatCompletionMessageParamUnion{}
	if request.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(request.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(request.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(request.MaxTokens)),
		Temperature:         openai.Float(request.Temperature),
		Model:               openai.ChatModel(c.ModelID),
	}

	output, err := c.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gpt model: %w", err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := output.Choices[0]
	return &llm.Response{
		Content:    choice.Message.Content,
		StopReason: fmt.Sprint(choice.FinishReason),
	}, nil
}

// CompleteWithRetry delegates to the SDK's built-in retry handling.
func (c *Client) CompleteWithRetry(ctx context.Context, request llm.Request) (*llm.Response, error) {
	return c.Complete(ctx, request)
}
