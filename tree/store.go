package tree

import "github.com/npillmayer/ixml/span"

// NodeKind distinguishes the four node shapes a reconstructed tree can hold.
type NodeKind int

const (
	RootNode NodeKind = iota
	ElementNode
	AttributeNode
	TextNode
)

func (k NodeKind) String() string {
	switch k {
	case RootNode:
		return "root"
	case ElementNode:
		return "element"
	case AttributeNode:
		return "attribute"
	case TextNode:
		return "text"
	default:
		return "?"
	}
}

// Node is one entry in a Store's arena. Name holds an Element's or
// Attribute's name; Value holds a Text node's rune content, or (after the
// attribute post-pass — see applyAttributePostPass) an Attribute's resolved
// value. Parent is -1 only for the Root node.
type Node struct {
	Kind     NodeKind
	Name     string
	Value    string
	Span     span.Span
	Parent   int
	Children []int
}

// Store is a flat, append-only element-tree arena with parent links, in
// the spirit of gorgo's arena-oriented lr/sppf.Forest but considerably
// simpler: completed Earley items already carry resolved match histories,
// so a Store never needs a packed/shared-subtree representation, only
// plain parent-child links.
type Store struct {
	nodes []Node
}

// NewStore creates a Store containing only its Root node, at id 0.
func NewStore() *Store {
	s := &Store{}
	s.nodes = append(s.nodes, Node{Kind: RootNode, Parent: -1})
	return s
}

// Root returns the id of the Store's root node.
func (s *Store) Root() int {
	return 0
}

// Node returns the node at id. id must be a value previously returned by
// Root or one of the Append* methods on the same Store.
func (s *Store) Node(id int) Node {
	return s.nodes[id]
}

// NumNodes returns the number of nodes in the arena, including the root.
func (s *Store) NumNodes() int {
	return len(s.nodes)
}

func (s *Store) append(parent int, n Node) int {
	n.Parent = parent
	id := len(s.nodes)
	s.nodes = append(s.nodes, n)
	s.nodes[parent].Children = append(s.nodes[parent].Children, id)
	return id
}

// AppendElement appends a new Element node named name, covering sp, as a
// child of parent and returns its id.
func (s *Store) AppendElement(parent int, name string, sp span.Span) int {
	return s.append(parent, Node{Kind: ElementNode, Name: name, Span: sp})
}

// AppendAttribute appends a new Attribute node named name, covering sp, as
// a child of parent and returns its id. Its Value is empty until the
// attribute post-pass fills it in from its Text descendants.
func (s *Store) AppendAttribute(parent int, name string, sp span.Span) int {
	return s.append(parent, Node{Kind: AttributeNode, Name: name, Span: sp})
}

// AppendText appends a new Text node holding a single rune at position pos
// as a child of parent and returns its id.
func (s *Store) AppendText(parent int, ch rune, pos int) int {
	return s.append(parent, Node{Kind: TextNode, Value: string(ch), Span: span.New(pos, pos+1)})
}

func (s *Store) setValue(id int, v string) {
	s.nodes[id].Value = v
}
