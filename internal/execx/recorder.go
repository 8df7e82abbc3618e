package execx

import (
	"context"
	"strings"
	"sync"
)

// Call is a single recorded command invocation.
type Call struct {
	Name string
	Args []string
}

// Line renders the invocation as a single command line.
func (c Call) Line() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Recorder is a Runner that records every invocation instead of
// executing it. Outputs and errors can be scripted per command-line
// prefix; repeated calls to the same prefix consume queued outputs in
// order, which lets tests drive polling loops through state changes.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	outputs map[string][]string
	errs    map[string]error
}

func NewRecorder() *Recorder {
	return &Recorder{
		outputs: make(map[string][]string),
		errs:    make(map[string]error),
	}
}

// Queue appends an output for commands whose line starts with prefix.
func (r *Recorder) Queue(prefix, output string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[prefix] = append(r.outputs[prefix], output)
}

// Fail makes commands whose line starts with prefix return err.
func (r *Recorder) Fail(prefix string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[prefix] = err
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Lines returns the recorded invocations as command lines.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, c.Line())
	}
	return lines
}

func (r *Recorder) Run(ctx context.Context, name string, args ...string) error {
	_, err := r.record(name, args)
	return err
}

func (r *Recorder) Output(ctx context.Context, name string, args ...string) (string, error) {
	return r.record(name, args)
}

func (r *Recorder) record(name string, args []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := Call{Name: name, Args: args}
	r.calls = append(r.calls, call)
	line := call.Line()

	prefix := r.longestPrefix(line)
	if prefix == "" {
		return "", nil
	}
	if err, ok := r.errs[prefix]; ok && err != nil {
		return "", err
	}

	queue := r.outputs[prefix]
	if len(queue) == 0 {
		return "", nil
	}
	out := queue[0]
	if len(queue) > 1 {
		r.outputs[prefix] = queue[1:]
	}
	return out, nil
}

// longestPrefix picks the most specific scripted prefix matching line,
// so "bx cs clusters" wins over "bx cs" when both are registered.
func (r *Recorder) longestPrefix(line string) string {
	best := ""
	for prefix := range r.outputs {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	for prefix := range r.errs {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	return best
}
