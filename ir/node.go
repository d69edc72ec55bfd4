package ir

type Type uint8

const (
	NullType Type = iota
	FalseType
	TrueType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case FalseType:
		return "false"
	case TrueType:
		return "true"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	}
	return "invalid"
}

func Types() []Type {
	return []Type{NullType, FalseType, TrueType, NumberType, StringType, ArrayType, ObjectType}
}

// Null constructs a null node.
func (d *Doc) Null() (Handle, error) {
	return d.newTyped(NullType)
}

// Bool constructs a true or false node.
func (d *Doc) Bool(v bool) (Handle, error) {
	if v {
		return d.newTyped(TrueType)
	}
	return d.newTyped(FalseType)
}

// Number constructs a number node. Both the float and the truncated
// integer representation are stored.
func (d *Doc) Number(f float64) (Handle, error) {
	h, err := d.newTyped(NumberType)
	if err != nil {
		return None, err
	}
	n := &d.nodes[h.idx]
	n.f = f
	n.i = int64(f)
	return h, nil
}

// Int constructs a number node from an integer.
func (d *Doc) Int(i int64) (Handle, error) {
	h, err := d.newTyped(NumberType)
	if err != nil {
		return None, err
	}
	n := &d.nodes[h.idx]
	n.f = float64(i)
	n.i = i
	return h, nil
}

// String constructs a string node owning a copy of s.
func (d *Doc) String(s string) (Handle, error) {
	h, err := d.newTyped(StringType)
	if err != nil {
		return None, err
	}
	d.nodes[h.idx].str = s
	return h, nil
}

// Array constructs an empty array node.
func (d *Doc) Array() (Handle, error) {
	return d.newTyped(ArrayType)
}

// Object constructs an empty object node.
func (d *Doc) Object() (Handle, error) {
	return d.newTyped(ObjectType)
}

func (d *Doc) newTyped(t Type) (Handle, error) {
	h, err := d.newNode()
	if err != nil {
		return None, err
	}
	d.nodes[h.idx].typ = t
	return h, nil
}

// TypeOf returns the node's type, resolving references.
func (d *Doc) TypeOf(h Handle) (Type, error) {
	n, err := d.resolve(h)
	if err != nil {
		return NullType, err
	}
	return n.typ, nil
}

// IsReference reports whether h addresses a reference node. False for
// stale handles.
func (d *Doc) IsReference(h Handle) bool {
	n, err := d.at(h)
	if err != nil {
		return false
	}
	return n.ref
}

// AsBool extracts a boolean. ErrType unless the node is true or false.
func (d *Doc) AsBool(h Handle) (bool, error) {
	n, err := d.resolve(h)
	if err != nil {
		return false, err
	}
	switch n.typ {
	case TrueType:
		return true, nil
	case FalseType:
		return false, nil
	}
	return false, typeErr(n.typ, "bool")
}

// AsInt extracts the truncated integer representation of a number.
func (d *Doc) AsInt(h Handle) (int64, error) {
	n, err := d.resolve(h)
	if err != nil {
		return 0, err
	}
	if n.typ != NumberType {
		return 0, typeErr(n.typ, "number")
	}
	return n.i, nil
}

// AsFloat extracts the floating-point representation of a number.
func (d *Doc) AsFloat(h Handle) (float64, error) {
	n, err := d.resolve(h)
	if err != nil {
		return 0, err
	}
	if n.typ != NumberType {
		return 0, typeErr(n.typ, "number")
	}
	return n.f, nil
}

// AsString extracts a string value.
func (d *Doc) AsString(h Handle) (string, error) {
	n, err := d.resolve(h)
	if err != nil {
		return "", err
	}
	if n.typ != StringType {
		return "", typeErr(n.typ, "string")
	}
	return n.str, nil
}

// Len returns the number of children of an array or object.
func (d *Doc) Len(h Handle) (int, error) {
	n, err := d.resolve(h)
	if err != nil {
		return 0, err
	}
	if n.typ != ArrayType && n.typ != ObjectType {
		return 0, typeErr(n.typ, "container")
	}
	return len(n.kids), nil
}

// At returns the i-th child of a container, or None when absent or when h
// is not a container.
func (d *Doc) At(h Handle, i int) Handle {
	n, err := d.resolve(h)
	if err != nil {
		return None
	}
	if i < 0 || i >= len(n.kids) {
		return None
	}
	return n.kids[i]
}

// Get returns the first member of an object whose name hash matches name,
// or None. Chain order decides between colliding members.
func (d *Doc) Get(h Handle, name string) Handle {
	return d.GetHash(h, d.hash([]byte(name)))
}

// GetHash is Get with a precomputed hash.
func (d *Doc) GetHash(h Handle, hash uint32) Handle {
	n, err := d.resolve(h)
	if err != nil {
		return None
	}
	if n.typ != ObjectType {
		return None
	}
	for _, kid := range n.kids {
		kn, err := d.at(kid)
		if err != nil {
			continue
		}
		if kn.nameHash == hash {
			return kid
		}
	}
	return None
}

// Name returns the member name of h, when it is an object member and the
// Doc retains names. The empty string is a valid member name.
func (d *Doc) Name(h Handle) (string, bool) {
	n, err := d.at(h)
	if err != nil || !n.named || !d.names {
		return "", false
	}
	return n.name, true
}

// NameHash returns the member-name hash of h, 0 when h is not an object
// member.
func (d *Doc) NameHash(h Handle) uint32 {
	n, err := d.at(h)
	if err != nil {
		return 0
	}
	return n.nameHash
}
