// Package anthropic provides a model wrapper for the Anthropic Claude API.
//
// The Messages API has no JSON response-format parameter, so requests asking
// for model.FormatJSON rely on the prompt demanding a JSON object; the
// adapter passes the request through unchanged otherwise.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/dinersim/model"
)

// Options configures the Anthropic model adapter (model id, temperature,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Model wraps the Anthropic Messages API behind the generic model.Model interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a new Anthropic model from an existing client.
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
}

// Complete implements model.Model with a single non-streaming Messages call.
func (m *Model) Complete(ctx context.Context, req model.Request) (string, error) {
	messages, system := m.buildMessages(req.Messages)

	temperature := m.opts.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	params := anthropic.MessageNewParams{
		Model:       m.opts.Model,
		Messages:    messages,
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(temperature),
	}
	if req.Model != "" {
		params.Model = anthropic.Model(req.Model)
	}
	if len(system) > 0 {
		params.System = system
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return "", mapError(err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: no text content returned", model.ErrInvalidResponse)
	}
	return text, nil
}

// buildMessages converts normalized messages into Anthropic turns. System
// messages become system blocks; developer messages have no Anthropic
// counterpart and are folded into user turns.
func (m *Model) buildMessages(msgs []model.ChatMessage) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var messages []anthropic.MessageParam
	var system []anthropic.TextBlockParam
	for _, msg := range msgs {
		switch msg.Role {
		case model.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case model.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return messages, system
}

// mapError converts SDK failures into the model package's sentinel kinds.
func mapError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusTooManyRequests,
			apierr.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", model.ErrTransport, err)
		case apierr.StatusCode >= http.StatusBadRequest:
			return fmt.Errorf("%w: %v", model.ErrClient, err)
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidResponse, err)
	}
	return fmt.Errorf("%w: %v", model.ErrTransport, err)
}

// Info returns metadata describing this Anthropic model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: string(m.opts.Model), Provider: "anthropic"}
}
