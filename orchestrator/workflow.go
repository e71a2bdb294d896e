package orchestrator

// Step is one stage of a lifecycle run. A step returns an error only for a
// hard failure; recoverable findings go straight to the session ledger.
type Step interface {
	Run(*Session) error
}

// Workflow is a small graph of steps. Each node names the step to run next
// on success and on failure; a nil or unregistered edge ends the run.
type Workflow struct {
	start *Node
	index map[Step]*Node
}

func NewWorkflow() *Workflow {
	return &Workflow{index: map[Step]*Node{}}
}

func (w *Workflow) StartWith(step Step) *Node {
	node := w.Add(step)
	w.start = node
	return node
}

func (w *Workflow) Add(step Step) *Node {
	node := &Node{step: step}
	w.index[step] = node
	return node
}

// Run walks the graph from the starting step, accumulating the hard error of
// every step it visits.
func (w *Workflow) Run(session *Session) Error {
	var errs Error

	for node := w.start; node != nil; {
		if err := node.step.Run(session); err != nil {
			errs = append(errs, err)
			node = w.index[node.onFailure]
		} else {
			node = w.index[node.onSuccess]
		}
	}

	return errs
}

type Node struct {
	step      Step
	onSuccess Step
	onFailure Step
}

func (n *Node) OnSuccess(step Step) *Node {
	n.onSuccess = step
	return n
}

func (n *Node) OnFailure(step Step) *Node {
	n.onFailure = step
	return n
}

func (n *Node) OnSuccessOrFailure(step Step) *Node {
	return n.OnSuccess(step).OnFailure(step)
}
