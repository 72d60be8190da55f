package scenario

import (
	"context"
	"fmt"

	"github.com/san-kum/arraylist/internal/arraylist"
	"github.com/san-kum/arraylist/internal/metrics"
)

// Step is the recorded outcome of one operation.
type Step struct {
	Index    int    `json:"index"`
	Op       string `json:"op"`
	Arg      int    `json:"arg"`
	Value    string `json:"value"`
	Output   string `json:"output"`
	Error    string `json:"error"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Passed   bool   `json:"passed"`
	Message  string `json:"message,omitempty"`
}

type Result struct {
	Scenario        string
	Capacity        int
	Steps           []Step
	Passed          int
	Failed          int
	Final           []string
	Metrics         map[string]float64
	CapacityHistory []int
}

func (r *Result) OK() bool { return r.Failed == 0 }

// Observer is notified after each executed step.
type Observer interface {
	OnStep(step Step, list *arraylist.ArrayList[string])
}

type Runner struct {
	observers []Observer
}

func NewRunner(observers ...Observer) *Runner {
	return &Runner{observers: observers}
}

// Run executes the scenario against a fresh list. Expectation failures are
// recorded in the result; the returned error is reserved for cancellation.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	res := &Result{
		Scenario: sc.Name,
		Capacity: sc.InitialCapacity(),
	}

	list, err := newList(sc)
	construct := Step{Index: 0, Op: "new", Arg: res.Capacity, Error: ErrorKind(err)}
	construct.Passed, construct.Message = check(construct, sc.ExpectError, nil, nil, 0)
	if list != nil {
		construct.Capacity = list.Cap()
	}
	r.record(res, construct, list)
	if list == nil {
		return res, nil
	}

	tracker := metrics.NewGrowthTracker(list.Cap())
	list.SetGrowthObserver(tracker)

	for i, op := range sc.Ops {
		if err := ctx.Err(); err != nil {
			r.finish(res, list, tracker)
			return res, err
		}

		out, opErr := ops[op.Op](list, op)
		step := Step{
			Index:    i + 1,
			Op:       op.Op,
			Arg:      op.Index,
			Value:    op.Value,
			Output:   out,
			Error:    ErrorKind(opErr),
			Size:     list.Size(),
			Capacity: list.Cap(),
		}
		if len(op.Values) > 0 {
			step.Value = fmt.Sprint(op.Values)
		}
		step.Passed, step.Message = check(step, op.ExpectError, op.Expect, op.ExpectSize, list.Size())
		if opErr != nil && step.Error == kindUnexpectedFailure {
			step.Message = opErr.Error()
		}
		r.record(res, step, list)
	}

	r.finish(res, list, tracker)
	return res, nil
}

func (r *Runner) record(res *Result, step Step, list *arraylist.ArrayList[string]) {
	res.Steps = append(res.Steps, step)
	if step.Passed {
		res.Passed++
	} else {
		res.Failed++
	}
	for _, o := range r.observers {
		o.OnStep(step, list)
	}
}

func (r *Runner) finish(res *Result, list *arraylist.ArrayList[string], tracker *metrics.GrowthTracker) {
	res.Final = arraylist.Values[string](list)
	res.Metrics = tracker.Snapshot()
	res.Metrics["size"] = float64(list.Size())
	res.CapacityHistory = tracker.History()
}

func newList(sc *Scenario) (*arraylist.ArrayList[string], error) {
	if sc.Capacity == nil {
		return arraylist.New[string](), nil
	}
	return arraylist.NewWithCapacity[string](*sc.Capacity)
}

func check(step Step, expectError string, expect *string, expectSize *int, size int) (bool, string) {
	if step.Error != expectError {
		if expectError == "" {
			return false, fmt.Sprintf("unexpected error %s", step.Error)
		}
		if step.Error == "" {
			return false, fmt.Sprintf("expected error %s, got none", expectError)
		}
		return false, fmt.Sprintf("expected error %s, got %s", expectError, step.Error)
	}
	if expect != nil && step.Output != *expect {
		return false, fmt.Sprintf("expected %q, got %q", *expect, step.Output)
	}
	if expectSize != nil && size != *expectSize {
		return false, fmt.Sprintf("expected size %d, got %d", *expectSize, size)
	}
	return true, ""
}
