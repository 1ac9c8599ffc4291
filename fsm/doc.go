// Package fsm implements the dialog state machine that drives one simulated
// ordering conversation through its fixed pipeline. The machine owns the
// legal transition table, dispatches each transition to the step handler
// bound to its destination state, and commits the result with a conditional
// store update so that at most one concurrent writer can apply a given
// transition.
//
// The handler table is fixed and built once in NewMachine; there is no
// runtime registration. Handlers are read-only after construction, so a
// single Machine can drive any number of sessions concurrently.
package fsm
