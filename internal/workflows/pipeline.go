// Package workflows composes the individual operations into the
// end-to-end deployment pipeline.
package workflows

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	flow "github.com/noneback/go-taskflow"
)

// Step is one named unit of the pipeline.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result records how a step ended.
type Result struct {
	Name    string
	Err     error
	Skipped bool
}

// Pipeline runs steps strictly in order through a taskflow graph.
// A failed step marks the pipeline failed; later steps are skipped
// instead of half-run, and every step's outcome is reported.
type Pipeline struct {
	name  string
	steps []Step

	mu      sync.Mutex
	results []Result
	failed  bool
}

func NewPipeline(name string, steps ...Step) *Pipeline {
	return &Pipeline{name: name, steps: steps}
}

// Execute runs the pipeline and returns per-step results. The error is
// the first step failure, if any.
func (p *Pipeline) Execute(ctx context.Context) ([]Result, error) {
	tf := flow.NewTaskFlow(p.name)

	var prev *flow.Task
	for _, step := range p.steps {
		task := tf.NewTask(step.Name, p.taskFunc(ctx, step))
		if prev != nil {
			prev.Precede(task)
		}
		prev = task
	}

	executor := flow.NewExecutor(uint(len(p.steps) + 1))
	executor.Run(tf).Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range p.results {
		if r.Err != nil {
			return p.results, fmt.Errorf("step %s failed: %w", r.Name, r.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		return p.results, err
	}
	return p.results, nil
}

func (p *Pipeline) taskFunc(ctx context.Context, step Step) func() {
	return func() {
		p.mu.Lock()
		skip := p.failed || ctx.Err() != nil
		p.mu.Unlock()

		if skip {
			log.Warn("skipping step", "pipeline", p.name, "step", step.Name)
			p.record(Result{Name: step.Name, Skipped: true})
			return
		}

		log.Info("running step", "pipeline", p.name, "step", step.Name)
		err := step.Run(ctx)
		if err != nil {
			log.Error("step failed", "pipeline", p.name, "step", step.Name, "error", err)
		}
		p.record(Result{Name: step.Name, Err: err})
	}
}

func (p *Pipeline) record(r Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, r)
	if r.Err != nil {
		p.failed = true
	}
}

// Summarize logs one line per step outcome.
func Summarize(results []Result) {
	for _, r := range results {
		switch {
		case r.Skipped:
			log.Warn("step skipped", "step", r.Name)
		case r.Err != nil:
			log.Error("step failed", "step", r.Name, "error", r.Err)
		default:
			log.Info("step succeeded", "step", r.Name)
		}
	}
}
