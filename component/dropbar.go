package component

// Step reports what a single tick did to the bar.
type Step struct {
	// Completed is set on the tick that settled the current node.
	Completed bool
	// Bounced is set when the settled node had no neighbour in the travel
	// direction, so the direction flipped and Curr stayed put.
	Bounced bool
	Settled int
	Scale   float64
	Curr    int
	Dir     int
}

// LinkedDropBar animates one node of the chain at a time. After the current
// node settles, the next one in the travel direction becomes current; at
// either end of the chain the direction reverses instead.
type LinkedDropBar struct {
	chain *Chain
	gap   float64
	curr  int
	dir   int
}

func NewLinkedDropBar(cfg Config) *LinkedDropBar {
	gap := cfg.ScaleGap
	if gap <= 0 {
		gap = DefaultScaleGap
	}
	return &LinkedDropBar{
		chain: NewChain(cfg.Nodes),
		gap:   gap,
		dir:   1,
	}
}

func (b *LinkedDropBar) Chain() *Chain {
	if b == nil {
		return nil
	}
	return b.chain
}

func (b *LinkedDropBar) Curr() *Node {
	if b == nil {
		return nil
	}
	return b.chain.Node(b.curr)
}

func (b *LinkedDropBar) CurrIndex() int {
	if b == nil {
		return 0
	}
	return b.curr
}

// Dir is the travel direction, +1 towards the tail and -1 towards the head.
func (b *LinkedDropBar) Dir() int {
	if b == nil {
		return 0
	}
	return b.dir
}

// Idle reports whether the current node is at rest.
func (b *LinkedDropBar) Idle() bool {
	n := b.Curr()
	return n == nil || n.State.Idle()
}

// StartUpdating starts the current node moving. Returns false while it is
// already animating.
func (b *LinkedDropBar) StartUpdating() bool {
	n := b.Curr()
	if n == nil {
		return false
	}
	return n.State.StartUpdating()
}

// Update advances the current node by one tick and, when it settles, moves
// on to the next node.
func (b *LinkedDropBar) Update() Step {
	n := b.Curr()
	if n == nil {
		return Step{}
	}
	step := Step{Curr: b.curr, Dir: b.dir}
	if !n.State.Update(b.gap) {
		return step
	}

	next, bounced := b.chain.Next(b.curr, b.dir)
	if bounced {
		b.dir *= -1
	}
	b.curr = next

	step.Completed = true
	step.Bounced = bounced
	step.Settled = n.Index
	step.Scale = n.State.Scale
	step.Curr = b.curr
	step.Dir = b.dir
	return step
}

// Walk visits every node from the head, regardless of which one is current.
func (b *LinkedDropBar) Walk(fn func(n *Node)) {
	if b == nil {
		return
	}
	b.chain.Walk(fn)
}
