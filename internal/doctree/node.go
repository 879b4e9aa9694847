package doctree

// Kind discriminates the node types in the documentation tree
type Kind int

const (
	KindRoot Kind = iota
	KindGroup
	KindCommand
	KindExecuteMethod
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindGroup:
		return "group"
	case KindCommand:
		return "command"
	case KindExecuteMethod:
		return "execute-method"
	default:
		return "unknown"
	}
}

// Node is a single node in the documentation tree. Group and root nodes
// carry only a name and comment; command nodes additionally carry a
// CommandNode payload. Children are owned by their parent and ordered by
// insertion.
type Node struct {
	kind     Kind
	name     string
	comment  string
	parent   *Node
	children []*Node

	// Command holds the payload for KindCommand and KindExecuteMethod nodes
	Command *CommandNode
}

// NewRootNode creates the root of a documentation tree
func NewRootNode(name string) *Node {
	return &Node{kind: KindRoot, name: name}
}

// NewGroupNode creates a group node owned by parent
func NewGroupNode(name, comment string, parent *Node) *Node {
	node := &Node{kind: KindGroup, name: name, comment: comment}
	if parent != nil {
		parent.AppendChild(node)
	}
	return node
}

// Kind returns the node's kind
func (n *Node) Kind() Kind {
	return n.kind
}

// KindOf reports whether the node's kind matches any of the given kinds
func (n *Node) KindOf(kinds ...Kind) bool {
	for _, k := range kinds {
		if n.kind == k {
			return true
		}
	}
	return false
}

// Name returns the node's name
func (n *Node) Name() string {
	return n.name
}

// Comment returns the node's descriptive comment
func (n *Node) Comment() string {
	return n.comment
}

// Parent returns the owning node, nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild attaches a child to this node, detaching it from any
// previous parent first
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Walk visits the node and all descendants depth-first
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(visit)
	}
}

// Commands returns every command payload beneath the node, depth-first
func (n *Node) Commands() []*CommandNode {
	var out []*CommandNode
	n.Walk(func(node *Node) bool {
		if node.Command != nil {
			out = append(out, node.Command)
		}
		return true
	})
	return out
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
