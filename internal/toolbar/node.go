package toolbar

// Meta carries optional rendering hints for a node.
type Meta struct {
	Class  string `json:"class,omitempty"`
	Title  string `json:"title,omitempty"`
	Target string `json:"target,omitempty"`
}

func (m Meta) IsZero() bool {
	return m == Meta{}
}

// Node is one toolbar entry. Parent is empty for top-level nodes.
type Node struct {
	ID     string `json:"id"`
	Parent string `json:"parent,omitempty"`
	Title  string `json:"title"`
	Href   string `json:"href,omitempty"`
	Group  bool   `json:"group,omitempty"`
	Meta   Meta   `json:"meta"`
}

// Branch is a node with its resolved children, used for nested views.
type Branch struct {
	Node
	Children []Branch `json:"children,omitempty"`
}

// merge overlays the non-empty fields of in onto n.
func (n *Node) merge(in Node) {
	if in.Parent != "" {
		n.Parent = in.Parent
	}
	if in.Title != "" {
		n.Title = in.Title
	}
	if in.Href != "" {
		n.Href = in.Href
	}
	if in.Group {
		n.Group = true
	}
	if in.Meta.Class != "" {
		n.Meta.Class = in.Meta.Class
	}
	if in.Meta.Title != "" {
		n.Meta.Title = in.Meta.Title
	}
	if in.Meta.Target != "" {
		n.Meta.Target = in.Meta.Target
	}
}
