// Package role translates a session transcript into a provider message
// sequence from one designated speaker's point of view. Entries authored by
// the acting speaker become assistant turns, entries by the other party
// become user turns; the waiter and customer roles are therefore mirror
// images over the same transcript.
package role

import (
	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/model"
)

// Role is a conversation perspective: an acting speaker plus a fixed persona
// blurb interpolated into step prompts. The zero acting speaker denotes a
// detached judge that sees no transcript (the analyzer).
type Role struct {
	actor   core.Speaker
	persona string
}

// Waiter returns the waiter perspective.
func Waiter() Role {
	return Role{
		actor: core.SpeakerWaiter,
		persona: "You are a friendly and passionate waiter at Cosmos Restaurant.\n" +
			"Your tone is warm, professional, and approachable.",
	}
}

// Customer returns the customer perspective.
func Customer() Role {
	return Role{
		actor: core.SpeakerCustomer,
		persona: "You are a customer at Cosmos restaurant, being served by a waiter to order food.\n" +
			"You may have a certain dietary preference.",
	}
}

// Analyzer returns the detached judge perspective used by the terminal
// analysis step. It has no acting speaker and ignores the transcript.
func Analyzer() Role {
	return Role{
		persona: "You are an assistant specialized in detecting a customer's dietary preference from conversation.",
	}
}

// Persona returns the fixed persona text for prompt interpolation.
func (r Role) Persona() string { return r.persona }

// Actor returns the acting speaker ("" for the analyzer).
func (r Role) Actor() core.Speaker { return r.actor }

// BuildMessages assembles the provider message sequence: the system prompt,
// the transcript reinterpreted from the acting speaker's point of view, then
// any extra messages (developer seeds, auxiliary facts). Roles without an
// acting speaker skip the transcript entirely.
func (r Role) BuildMessages(
	systemPrompt string,
	transcript []core.DialogMessage,
	extra ...model.ChatMessage,
) []model.ChatMessage {
	messages := make([]model.ChatMessage, 0, len(transcript)+len(extra)+1)
	messages = append(messages, model.System(systemPrompt))
	if r.actor != "" {
		for _, entry := range transcript {
			if entry.Speaker == r.actor {
				messages = append(messages, model.Assistant(entry.Text))
			} else {
				messages = append(messages, model.User(entry.Text))
			}
		}
	}
	messages = append(messages, extra...)
	return messages
}
