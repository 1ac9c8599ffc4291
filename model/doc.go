// Package model defines the narrow "generate completion" capability the
// engine consumes, plus a scripted mock for deterministic tests. Concrete
// provider adapters live in sub-packages (openai, anthropic) so the engine
// never depends on a vendor SDK directly.
package model
