package circuit

import "golang.org/x/sync/errgroup"

// Task pairs one Circuit with the deltas to feed it for one step. Tasks
// in a single RunGroup call must reference distinct circuits that share
// no state; stepping the same Circuit from two tasks concurrently is a
// data race.
type Task struct {
	Circuit *Circuit
	Deltas  map[string]any
}

// RunGroup steps every task's circuit concurrently and returns the
// first error any Step returns (a validation error or an
// *ErrStepAborted).
func RunGroup(tasks []Task) error {
	var g errgroup.Group
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			return task.Circuit.Step(task.Deltas)
		})
	}
	return g.Wait()
}
