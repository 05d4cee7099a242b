package component

// NodeSnapshot is a copy of one node's state.
type NodeSnapshot struct {
	Index     int     `yaml:"index"`
	Scale     float64 `yaml:"scale"`
	PrevScale float64 `yaml:"prev_scale"`
	Dir       int     `yaml:"dir"`
}

// Snapshot is a point-in-time copy of the bar, suitable for dumping.
type Snapshot struct {
	Curr  int            `yaml:"curr"`
	Dir   int            `yaml:"dir"`
	Nodes []NodeSnapshot `yaml:"nodes"`
}

func (b *LinkedDropBar) Snapshot() Snapshot {
	if b == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		Curr:  b.curr,
		Dir:   b.dir,
		Nodes: make([]NodeSnapshot, 0, b.chain.Len()),
	}
	b.Walk(func(n *Node) {
		snap.Nodes = append(snap.Nodes, NodeSnapshot{
			Index:     n.Index,
			Scale:     n.State.Scale,
			PrevScale: n.State.PrevScale,
			Dir:       n.State.Dir,
		})
	})
	return snap
}
