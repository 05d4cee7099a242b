package component

// Node is one column of the bar.
type Node struct {
	Index int
	State State
}

// Chain is the fixed, ordered run of nodes from head (0) to tail. It is
// built once and never grows or shrinks.
type Chain struct {
	nodes []*Node
}

func NewChain(n int) *Chain {
	if n < 1 {
		n = 1
	}
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = &Node{Index: i}
	}
	return &Chain{nodes: nodes}
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.nodes)
}

// Node returns the node at i, or nil when i is outside the chain.
func (c *Chain) Node(i int) *Node {
	if c == nil || i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

func (c *Chain) Head() *Node {
	return c.Node(0)
}

func (c *Chain) Tail() *Node {
	return c.Node(c.Len() - 1)
}

// Next returns the neighbour of i in direction dir (+1 forward, anything
// else backward). At either end there is no neighbour: i is returned
// unchanged with bounced set so the caller can reverse.
func (c *Chain) Next(i, dir int) (next int, bounced bool) {
	step := -1
	if dir == 1 {
		step = 1
	}
	if c.Node(i+step) == nil {
		return i, true
	}
	return i + step, false
}

// Walk visits every node from head to tail.
func (c *Chain) Walk(fn func(n *Node)) {
	if c == nil || fn == nil {
		return
	}
	for _, n := range c.nodes {
		fn(n)
	}
}
