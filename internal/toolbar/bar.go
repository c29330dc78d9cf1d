package toolbar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidNode   = errors.New("toolbar: invalid node")
	ErrParentMissing = errors.New("toolbar: parent not found")
	ErrCycle         = errors.New("toolbar: parent cycle")
)

// Bar is the toolbar tree for a single render. It is not safe for
// concurrent use; each render owns its own Bar.
type Bar struct {
	order   []string
	nodes   map[string]*Node
	visible bool
}

func New() *Bar {
	return &Bar{nodes: make(map[string]*Node)}
}

// AddNode inserts n after every node already present. A node whose id is
// already present is merged in place instead.
func (b *Bar) AddNode(n Node) error {
	n.ID = strings.TrimSpace(n.ID)
	n.Parent = strings.TrimSpace(n.Parent)
	if n.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidNode)
	}
	if n.Parent == n.ID {
		return fmt.Errorf("%w: node %q cannot parent itself", ErrInvalidNode, n.ID)
	}
	if n.Parent != "" {
		if _, ok := b.nodes[n.Parent]; !ok {
			return fmt.Errorf("%w: node=%q parent=%q", ErrParentMissing, n.ID, n.Parent)
		}
	}

	if existing, ok := b.nodes[n.ID]; ok {
		if n.Parent != "" && n.Parent != existing.Parent && b.descends(n.Parent, n.ID) {
			return fmt.Errorf("%w: node=%q parent=%q", ErrCycle, n.ID, n.Parent)
		}
		existing.merge(n)
		return nil
	}

	stored := n
	b.nodes[n.ID] = &stored
	b.order = append(b.order, n.ID)
	return nil
}

// AddGroup inserts n as a grouping node.
func (b *Bar) AddGroup(n Node) error {
	n.Group = true
	return b.AddNode(n)
}

// RemoveNode drops id and everything beneath it.
func (b *Bar) RemoveNode(id string) bool {
	if _, ok := b.nodes[id]; !ok {
		return false
	}
	// A merge may reparent under a later node, so walk ancestry rather than
	// trusting insertion order.
	doomed := make(map[string]bool)
	for _, nid := range b.order {
		if b.descends(nid, id) {
			doomed[nid] = true
		}
	}
	kept := b.order[:0]
	for _, nid := range b.order {
		if doomed[nid] {
			delete(b.nodes, nid)
			continue
		}
		kept = append(kept, nid)
	}
	b.order = kept
	return true
}

func (b *Bar) Node(id string) (Node, bool) {
	n, ok := b.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns a copy of every node in insertion order.
func (b *Bar) Nodes() []Node {
	out := make([]Node, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.nodes[id])
	}
	return out
}

// Children returns direct children of id in insertion order. An empty id
// selects top-level nodes.
func (b *Bar) Children(id string) []Node {
	out := make([]Node, 0)
	for _, nid := range b.order {
		n := b.nodes[nid]
		if n.Parent == id {
			out = append(out, *n)
		}
	}
	return out
}

func (b *Bar) Len() int {
	return len(b.order)
}

func (b *Bar) Tree() []Branch {
	return b.branches("")
}

func (b *Bar) branches(parent string) []Branch {
	children := b.Children(parent)
	if len(children) == 0 {
		return nil
	}
	out := make([]Branch, 0, len(children))
	for _, n := range children {
		out = append(out, Branch{Node: n, Children: b.branches(n.ID)})
	}
	return out
}

func (b *Bar) SetVisible(v bool) {
	b.visible = v
}

// ForceVisible shows the toolbar regardless of the viewer default.
func (b *Bar) ForceVisible() {
	b.visible = true
}

func (b *Bar) Visible() bool {
	return b.visible
}

// descends reports whether id sits at or below ancestor.
func (b *Bar) descends(id, ancestor string) bool {
	for cur := id; cur != ""; {
		if cur == ancestor {
			return true
		}
		n, ok := b.nodes[cur]
		if !ok {
			return false
		}
		cur = n.Parent
	}
	return false
}
