package fsm

import (
	"context"
	"fmt"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/menu"
	"github.com/hupe1980/dinersim/model"
	"github.com/hupe1980/dinersim/role"
	"github.com/hupe1980/dinersim/validate"
)

// StepOutput is the result of one step handler run: the raw generated text
// (empty for non-generating steps) and the persistence side-effect to commit.
type StepOutput struct {
	Text   string
	Update core.SessionUpdate
}

// StepHandler orchestrates role, generation, validation and the persist
// effect for exactly one pipeline state. Generate must not mutate the
// session; mutation happens only through the machine's conditional commit.
type StepHandler interface {
	State() core.PipelineState
	Generate(ctx context.Context, sess *core.Session) (StepOutput, error)
}

// newHandlers builds the fixed state → handler table.
func newHandlers(m model.Model, catalog *menu.Catalog) map[core.PipelineState]StepHandler {
	handlers := map[core.PipelineState]StepHandler{
		core.StateGreeting: &textStep{
			state:   core.StateGreeting,
			model:   m,
			role:    role.Waiter(),
			prompt:  greetingPrompt,
			profile: validate.Profile{ForbidNewline: true, ForbidWrappedQuotes: true, RequireQuestionMark: true},
		},
		core.StateDayReply: &textStep{
			state:   core.StateDayReply,
			model:   m,
			role:    role.Customer(),
			prompt:  dayReplyPrompt,
			profile: validate.Profile{ForbidNewline: true, ForbidWrappedQuotes: true, ForbidQuestionMark: true},
		},
		core.StateAskFavorites: &textStep{
			state:   core.StateAskFavorites,
			model:   m,
			role:    role.Waiter(),
			prompt:  askFavoritesPrompt,
			profile: validate.Profile{ForbidNewline: true, ForbidWrappedQuotes: true},
		},
		core.StateFavoritesReply: &textStep{
			state:    core.StateFavoritesReply,
			model:    m,
			role:     role.Customer(),
			prompt:   favoritesReplyPrompt,
			profile:  validate.Profile{ForbidNewline: true, ForbidWrappedQuotes: true, ForbidQuestionMark: true},
			extracts: extractFavorite,
		},
		core.StateAskOrder: &textStep{
			state:   core.StateAskOrder,
			model:   m,
			role:    role.Waiter(),
			prompt:  askOrderPrompt,
			profile: validate.Profile{ForbidNewline: true, ForbidWrappedQuotes: true},
		},
		core.StateOrderReply: &textStep{
			state:    core.StateOrderReply,
			model:    m,
			role:     role.Customer(),
			prompt:   func(r role.Role) string { return orderReplyPrompt(r, catalog) },
			profile:  validate.Profile{ForbidNewline: true, ForbidWrappedQuotes: true, ForbidQuestionMark: true},
			extracts: extractOrder,
		},
		core.StateAnalyze:  &analyzeStep{model: m, catalog: catalog},
		core.StateComplete: &completeStep{},
	}
	return handlers
}

// extract marks a step whose transcript entry is additionally copied into a
// dedicated session field.
type extract int

const (
	extractNone extract = iota
	extractFavorite
	extractOrder
)

// textStep is the shared implementation behind the six free-text handlers.
// Each instance binds a role, a system prompt, an output-constraint profile
// and an optional extracted-field effect.
type textStep struct {
	state    core.PipelineState
	model    model.Model
	role     role.Role
	prompt   func(r role.Role) string
	profile  validate.Profile
	extracts extract
}

// State implements StepHandler.
func (s *textStep) State() core.PipelineState { return s.state }

// Generate implements StepHandler for free-text steps: build messages from
// the role-inverted transcript, complete, validate, and describe the append.
func (s *textStep) Generate(ctx context.Context, sess *core.Session) (StepOutput, error) {
	messages := s.role.BuildMessages(
		s.prompt(s.role),
		sess.Messages,
		model.Developer("Start your chat."),
	)

	text, err := s.model.Complete(ctx, model.Request{Messages: messages})
	if err != nil {
		return StepOutput{}, err
	}
	if err := validate.Text(text, s.profile); err != nil {
		return StepOutput{}, fmt.Errorf("output rejected: %w", err)
	}

	update := core.SessionUpdate{
		AppendMessage: &core.DialogMessage{Speaker: s.role.Actor(), Text: text},
	}
	switch s.extracts {
	case extractFavorite:
		update.FavoriteText = &text
	case extractOrder:
		update.OrderText = &text
	}
	return StepOutput{Text: text, Update: update}, nil
}

// analyzeStep is the terminal judge step. Its role sees no transcript; the
// extracted favorite and order texts are passed as a developer message and
// the provider is asked for a single minified JSON object at temperature 0.
type analyzeStep struct {
	model   model.Model
	catalog *menu.Catalog
}

// State implements StepHandler.
func (s *analyzeStep) State() core.PipelineState { return core.StateAnalyze }

// Generate implements StepHandler for the analysis step.
func (s *analyzeStep) Generate(ctx context.Context, sess *core.Session) (StepOutput, error) {
	facts := fmt.Sprintf("Customer's Favorite: %s\nCustomer's Order: %s", sess.FavoriteText, sess.OrderText)
	messages := role.Analyzer().BuildMessages(
		analyzePrompt(s.catalog),
		nil,
		model.Developer(facts),
	)

	temperature := 0.0
	text, err := s.model.Complete(ctx, model.Request{
		Messages:       messages,
		Temperature:    &temperature,
		ResponseFormat: model.FormatJSON,
	})
	if err != nil {
		return StepOutput{}, err
	}

	result, err := validate.Analysis(text)
	if err != nil {
		return StepOutput{}, fmt.Errorf("output rejected: %w", err)
	}
	return StepOutput{
		Text:   text,
		Update: core.SessionUpdate{Analysis: result},
	}, nil
}

// completeStep closes a session. It generates nothing and writes no fields;
// the only effect is the state advance performed by the machine's commit.
type completeStep struct{}

// State implements StepHandler.
func (s *completeStep) State() core.PipelineState { return core.StateComplete }

// Generate implements StepHandler.
func (s *completeStep) Generate(context.Context, *core.Session) (StepOutput, error) {
	return StepOutput{}, nil
}
