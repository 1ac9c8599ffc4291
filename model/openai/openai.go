// Package openai provides an implementation of model.Model using the OpenAI
// Chat Completions API. It adapts dinersim's normalized request structure
// into the SDK's message format and maps SDK failures onto the model
// package's distinguishable error kinds.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hupe1980/dinersim/model"
	"github.com/openai/openai-go"
)

// Options configure the OpenAI model adapter. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model       string
	Temperature float64
}

// Model wraps the OpenAI Chat Completions API behind the generic
// model.Model interface.
type Model struct {
	client *openai.Client
	opts   Options
}

// NewModel creates a new OpenAI model using the official client. The client
// reads OPENAI_API_KEY / OPENAI_BASE_URL from the environment.
func NewModel(optFns ...func(o *Options)) *Model {
	client := openai.NewClient()
	return NewModelFromClient(&client, optFns...)
}

// NewModelFromClient creates a new OpenAI model from an existing client.
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:       openai.ChatModelGPT4o,
		Temperature: 0.7,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Complete implements model.Model with a single non-streaming completion.
func (m *Model) Complete(ctx context.Context, req model.Request) (string, error) {
	params := m.buildParams(req)

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", model.ErrInvalidResponse)
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: missing choices[0].message.content", model.ErrInvalidResponse)
	}
	return content, nil
}

// buildParams assembles the OpenAI request parameters from a normalized request.
func (m *Model) buildParams(req model.Request) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case model.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case model.RoleDeveloper:
			messages = append(messages, openai.DeveloperMessage(msg.Content))
		case model.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	modelID := req.Model
	if modelID == "" {
		modelID = m.opts.Model
	}
	temperature := m.opts.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	params := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       modelID,
		Temperature: openai.Float(temperature),
	}
	if req.ResponseFormat == model.FormatJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}

// mapError converts SDK failures into the model package's sentinel kinds:
// 4xx configuration/parameter faults become ErrClient, everything reachable
// over the wire (timeouts, 429, 5xx, connection errors) becomes ErrTransport.
func mapError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusTooManyRequests,
			apierr.StatusCode == http.StatusRequestTimeout,
			apierr.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", model.ErrTransport, err)
		case apierr.StatusCode >= http.StatusBadRequest:
			return fmt.Errorf("%w: %v", model.ErrClient, err)
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidResponse, err)
	}
	return fmt.Errorf("%w: %v", model.ErrTransport, err)
}

// Info returns metadata describing this OpenAI model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "openai"}
}
