// Package triage implements Usher's ticket triage workflow: the shared
// TriageState record, the step functions that mutate it, the table-driven
// workflow graph that sequences them, and the Service boundary that the
// HTTP layer calls. Every step absorbs its own failures, so a graph
// invocation always terminates with a usable state.
package triage
