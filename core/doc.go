// Package core provides the foundational domain types and contracts used by
// dinersim. It defines the core abstractions for:
//
//   - Sessions (one simulated ordering conversation and its derived fields)
//   - PipelineState (the fixed linear sequence a session passes through)
//   - DialogMessage (one transcript entry attributed to a speaker)
//   - AnalysisResult (the structured dietary-preference judgment)
//   - SessionStore (pluggable persistence with a conditional-update commit)
//
// The package intentionally keeps implementation concerns (persistence
// backends, state-machine orchestration, prompt construction) out of scope,
// exposing small interfaces to enable custom backends and extensions.
package core
