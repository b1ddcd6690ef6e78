package starling

// nodeIDCounter is a plain counter (no atomic — starling is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the display-tree element. Nodes form a tree rooted at a Stage;
// children inherit their parent's coordinate space.
//
// Node implements PropertyTarget over its transform fields and alpha, so it
// can be handed directly to a Tween.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	// Visibility
	Alpha   float64
	Visible bool

	// Metadata
	UserData any

	// Internal
	transformDirty bool
	disposed       bool
}

// NewNode creates a node with identity transform and full opacity.
func NewNode(name string) *Node {
	n := &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Visible:        true,
		transformDirty: true,
	}
	return n
}

// --- PropertyTarget ---

// Property returns the named numeric field. The second result is false if
// the name does not address an animatable field on Node.
func (n *Node) Property(name string) (float64, bool) {
	switch name {
	case "x":
		return n.X, true
	case "y":
		return n.Y, true
	case "scaleX":
		return n.ScaleX, true
	case "scaleY":
		return n.ScaleY, true
	case "rotation":
		return n.Rotation, true
	case "skewX":
		return n.SkewX, true
	case "skewY":
		return n.SkewY, true
	case "pivotX":
		return n.PivotX, true
	case "pivotY":
		return n.PivotY, true
	case "alpha":
		return n.Alpha, true
	}
	return 0, false
}

// SetProperty writes the named numeric field and marks the node dirty.
// Returns false if the name does not address an animatable field.
func (n *Node) SetProperty(name string, value float64) bool {
	switch name {
	case "x":
		n.X = value
	case "y":
		n.Y = value
	case "scaleX":
		n.ScaleX = value
	case "scaleY":
		n.ScaleY = value
	case "rotation":
		n.Rotation = value
	case "skewX":
		n.SkewX = value
	case "skewY":
		n.SkewY = value
	case "pivotX":
		n.PivotX = value
	case "pivotY":
		n.PivotY = value
	case "alpha":
		n.Alpha = value
	default:
		return false
	}
	n.MarkDirty()
	return true
}

// MarkDirty flags the node's cached world transform for recomputation.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("starling: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("starling: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("starling: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("starling: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("starling: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("starling: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, and
// recursively disposes all descendants. In-flight tweens notice via
// IsDisposed and stop writing; pending tweens should be dropped with
// Juggler.RemoveTweensOf.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
