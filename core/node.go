package core

// Node is a search tree node: a state, a pointer to its parent (nil at the
// root), the action that produced it, and its path cost g (the number of
// edges from the root). Nodes form a reverse tree via Parent and are
// discarded by the engine once a search returns. Node defines no equality
// or hash of its own; the engine compares and hashes the contained State.
type Node struct {
	State  *State
	Parent *Node
	Action Action
	G      int
}

// NewRoot builds the root node of a search: parent absent, action START,
// g=0.
func NewRoot(s *State) *Node {
	return &Node{State: s, Parent: nil, Action: Start, G: 0}
}

// Child builds a node one edge past n, produced by the given successor.
func (n *Node) Child(succ Successor) *Node {
	return &Node{
		State:  succ.State,
		Parent: n,
		Action: ActionOf(succ.Action),
		G:      n.G + 1,
	}
}

// Path walks the parent chain from n back to the root, collecting states
// and actions, then reverses them so index 0 is the root (action START).
func (n *Node) Path() (states []*State, actions []Action) {
	for cur := n; cur != nil; cur = cur.Parent {
		states = append(states, cur.State)
		actions = append(actions, cur.Action)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
		actions[i], actions[j] = actions[j], actions[i]
	}

	return states, actions
}
