package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/linnemanlabs/go-core/log"
)

// StepFunc is a single named transformation in the workflow. Steps
// mutate the state in place and never fail.
type StepFunc func(ctx context.Context, s *State)

// RouteFunc picks the next step from the current state. Routing
// functions are pure: they read state and return a step name.
type RouteFunc func(s *State) string

// GraphHooks receive execution events, typically to drive metrics.
type GraphHooks struct {
	// OnStep fires after each step runs.
	OnStep func(step string)
	// OnComplete fires once per invocation with the terminal step name
	// and the wall-clock duration in seconds.
	OnComplete func(terminal string, seconds float64)
}

// Graph is a compiled workflow: step name to handler, step name to
// either an unconditional next step or a routing function. A Graph is
// built once at startup, is immutable afterwards, and is safe to share
// across concurrent invocations; all mutable data lives in the
// invocation-local State.
type Graph struct {
	entry        string
	steps        map[string]StepFunc
	edges        map[string]string
	routes       map[string]RouteFunc
	routeTargets []routeDecl
	hooks        GraphHooks
	logger       log.Logger
}

func newGraph(entry string, logger log.Logger, hooks GraphHooks) *Graph {
	if logger == nil {
		logger = log.Nop()
	}
	return &Graph{
		entry:  entry,
		steps:  make(map[string]StepFunc),
		edges:  make(map[string]string),
		routes: make(map[string]RouteFunc),
		hooks:  hooks,
		logger: logger,
	}
}

func (g *Graph) addStep(name string, fn StepFunc) {
	g.steps[name] = fn
}

func (g *Graph) addEdge(from, to string) {
	g.edges[from] = to
}

// addRoute attaches a conditional edge. targets declares every step name
// the routing function may return, so wiring mistakes surface at build
// time rather than mid-invocation.
func (g *Graph) addRoute(from string, fn RouteFunc, targets ...string) {
	g.routes[from] = fn
	g.routeTargets = append(g.routeTargets, routeDecl{from: from, targets: targets})
}

type routeDecl struct {
	from    string
	targets []string
}

func (g *Graph) validate() error {
	if _, ok := g.steps[g.entry]; !ok {
		return fmt.Errorf("graph: entry step %q is not registered", g.entry)
	}
	for from, to := range g.edges {
		if _, ok := g.steps[from]; !ok {
			return fmt.Errorf("graph: edge from unregistered step %q", from)
		}
		if _, ok := g.steps[to]; !ok {
			return fmt.Errorf("graph: edge %q -> %q targets unregistered step", from, to)
		}
		if _, dup := g.routes[from]; dup {
			return fmt.Errorf("graph: step %q has both an edge and a route", from)
		}
	}
	for _, decl := range g.routeTargets {
		if _, ok := g.steps[decl.from]; !ok {
			return fmt.Errorf("graph: route from unregistered step %q", decl.from)
		}
		for _, t := range decl.targets {
			if _, ok := g.steps[t]; !ok {
				return fmt.Errorf("graph: route from %q targets unregistered step %q", decl.from, t)
			}
		}
	}
	return nil
}

// Invoke walks the graph from the entry step to a terminal step (one
// with no outgoing edge), applying each step to the state in order. It
// always returns the final state: steps absorb their own failures and
// the walk is bounded by the step count, the graph being acyclic along
// every execution path.
func (g *Graph) Invoke(ctx context.Context, s *State) *State {
	start := time.Now()

	step := g.entry
	terminal := step
	for range len(g.steps) {
		fn, ok := g.steps[step]
		if !ok {
			g.logger.Error(ctx, fmt.Errorf("graph: routed to unregistered step %q", step), "invocation halted")
			break
		}

		g.logger.Info(ctx, "executing step", "step", step)
		fn(ctx, s)
		if g.hooks.OnStep != nil {
			g.hooks.OnStep(step)
		}
		terminal = step

		if route, ok := g.routes[step]; ok {
			step = route(s)
			continue
		}
		if next, ok := g.edges[step]; ok {
			step = next
			continue
		}
		break
	}

	if g.hooks.OnComplete != nil {
		g.hooks.OnComplete(terminal, time.Since(start).Seconds())
	}
	g.logger.Info(ctx, "workflow complete",
		"terminal", terminal,
		"duration", time.Since(start).Seconds(),
	)
	return s
}
