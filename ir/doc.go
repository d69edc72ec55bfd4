// Package ir provides the in-memory representation for sjson documents.
//
// # Overview
//
// A Doc is an arena holding every node of one document. Nodes are addressed
// by Handle, a stable (index, generation) pair, rather than by pointer.
// Containers keep an ordered sequence of child handles, so member and
// element order is insertion order and is preserved by encoding.
//
// # Handles
//
// The zero Handle is None and addresses nothing. Freeing a node bumps its
// generation, so handles into freed subtrees fail closed: operations on
// them report ErrStale instead of reading reused storage.
//
// # References
//
// AppendReference inserts a non-owning alias of another node. The alias
// resolves through the arena on every access; it never owns the target's
// children or string, so freeing the alias leaves the target intact, and
// freeing the target turns the alias stale.
//
// # Allocation
//
// Node construction is approved by the Doc's Allocator. The default
// allocator never refuses; a bounded one (see NewBudget) makes exhaustion
// observable, which callers see as ErrExhausted from construction, parsing
// or mutation.
//
// # Thread Safety
//
// Docs are not safe for concurrent mutation. Read-only sharing is fine once
// construction is complete.
//
// # Related Packages
//
//   - github.com/sjson-format/go-sjson/parse - parses text into a Doc
//   - github.com/sjson-format/go-sjson/encode - encodes a Doc to text
//   - github.com/sjson-format/go-sjson/gomap - converts Docs to and from Go values
package ir

// Handle addresses a node in a Doc. The zero value is None.
type Handle struct {
	idx uint32
	gen uint32
}

// None is the absent handle.
var None = Handle{}

// IsNone reports whether h addresses nothing.
func (h Handle) IsNone() bool {
	return h == None
}

// node is the arena element. Exactly one of the value fields is meaningful,
// selected by typ. A reference node has ref set and delegates everything
// except its name to target.
type node struct {
	gen      uint32
	typ      Type
	ref      bool
	named    bool
	nameHash uint32
	name     string
	f        float64
	i        int64
	str      string
	kids     []Handle
	target   Handle
}

type Doc struct {
	nodes []node
	free  []uint32
	root  Handle
	alloc Allocator
	hash  Hasher
	names bool
}

type Option func(*Doc)

// WithAllocator sets the allocator consulted before node construction.
func WithAllocator(a Allocator) Option {
	return func(d *Doc) { d.alloc = a }
}

// WithHasher sets the member-name hash function.
func WithHasher(h Hasher) Option {
	return func(d *Doc) { d.hash = h }
}

// DiscardNames drops member-name text, keeping only hashes. Lookups still
// work; encoding objects does not (ErrNoNames).
func DiscardNames() Option {
	return func(d *Doc) { d.names = false }
}

func New(opts ...Option) *Doc {
	d := &Doc{
		// slot 0 is reserved so the zero Handle is always invalid
		nodes: make([]node, 1, 16),
		alloc: stdAllocator{},
		hash:  HashKey,
		names: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the document root, set by the parser or by SetRoot.
func (d *Doc) Root() Handle {
	return d.root
}

func (d *Doc) SetRoot(h Handle) {
	d.root = h
}

func (d *Doc) newNode() (Handle, error) {
	if err := d.alloc.Alloc(1); err != nil {
		return None, err
	}
	if n := len(d.free); n > 0 {
		idx := d.free[n-1]
		d.free = d.free[:n-1]
		return Handle{idx: idx, gen: d.nodes[idx].gen}, nil
	}
	d.nodes = append(d.nodes, node{gen: 1})
	return Handle{idx: uint32(len(d.nodes) - 1), gen: 1}, nil
}

// at returns the node addressed by h, without resolving references.
func (d *Doc) at(h Handle) (*node, error) {
	if h.idx == 0 || int(h.idx) >= len(d.nodes) {
		return nil, ErrStale
	}
	n := &d.nodes[h.idx]
	if n.gen != h.gen {
		return nil, ErrStale
	}
	return n, nil
}

// resolve follows reference nodes to the owning node.
func (d *Doc) resolve(h Handle) (*node, error) {
	n, err := d.at(h)
	if err != nil {
		return nil, err
	}
	for n.ref {
		n, err = d.at(n.target)
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

// release invalidates a single node and recycles its slot. Callers handle
// recursion into children.
func (d *Doc) release(n *node, idx uint32) {
	gen := n.gen + 1
	*n = node{gen: gen}
	d.free = append(d.free, idx)
}
