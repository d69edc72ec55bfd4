package ir

// Structural operations on containers. Operations addressing an absent
// index or name are silent no-ops; callers check the boolean or handle
// returns for "not found". Only operations that construct nodes can fail
// with allocator or staleness errors.

// Append splices item onto the end of the container's child sequence,
// transferring ownership of item's whole subtree to the container. A None
// item is a no-op.
func (d *Doc) Append(c, item Handle) error {
	if item.IsNone() {
		return nil
	}
	n, err := d.resolve(c)
	if err != nil {
		return err
	}
	if n.typ != ArrayType && n.typ != ObjectType {
		return typeErr(n.typ, "container")
	}
	if _, err := d.at(item); err != nil {
		return err
	}
	n.kids = append(n.kids, item)
	return nil
}

// AppendNamed appends item to an object under name, assigning the item's
// name hash (and name text, when the Doc retains names).
func (d *Doc) AppendNamed(obj Handle, name string, item Handle) error {
	if item.IsNone() {
		return nil
	}
	in, err := d.at(item)
	if err != nil {
		return err
	}
	in.named = true
	in.nameHash = d.hash([]byte(name))
	if d.names {
		in.name = name
	}
	return d.Append(obj, item)
}

// AppendReference appends a non-owning alias of item to a container. The
// alias carries no name hash; freeing it leaves item intact.
func (d *Doc) AppendReference(c, item Handle) (Handle, error) {
	ref, err := d.newReference(item)
	if err != nil {
		return None, err
	}
	if err := d.Append(c, ref); err != nil {
		d.Free(ref)
		return None, err
	}
	return ref, nil
}

// AppendNamedReference appends a non-owning alias of item to an object
// under name, with the hash recomputed for name.
func (d *Doc) AppendNamedReference(obj Handle, name string, item Handle) (Handle, error) {
	ref, err := d.newReference(item)
	if err != nil {
		return None, err
	}
	if err := d.AppendNamed(obj, name, ref); err != nil {
		d.Free(ref)
		return None, err
	}
	return ref, nil
}

func (d *Doc) newReference(item Handle) (Handle, error) {
	target, err := d.at(item)
	if err != nil {
		return None, err
	}
	h, err := d.newNode()
	if err != nil {
		return None, err
	}
	n := &d.nodes[h.idx]
	n.typ = target.typ
	n.ref = true
	n.target = item
	return h, nil
}

// Detach unlinks the i-th child and returns it with ownership transferred
// to the caller. It does not recurse into the child.
func (d *Doc) Detach(c Handle, i int) (Handle, bool) {
	n, err := d.resolve(c)
	if err != nil {
		return None, false
	}
	if i < 0 || i >= len(n.kids) {
		return None, false
	}
	kid := n.kids[i]
	n.kids = append(n.kids[:i], n.kids[i+1:]...)
	return kid, true
}

// DetachField unlinks the first member matching name's hash.
func (d *Doc) DetachField(obj Handle, name string) (Handle, bool) {
	i, ok := d.fieldIndex(obj, d.hash([]byte(name)))
	if !ok {
		return None, false
	}
	return d.Detach(obj, i)
}

// Delete detaches the i-th child and destroys its subtree.
func (d *Doc) Delete(c Handle, i int) bool {
	kid, ok := d.Detach(c, i)
	if !ok {
		return false
	}
	d.Free(kid)
	return true
}

// DeleteField detaches the first member matching name's hash and destroys
// its subtree.
func (d *Doc) DeleteField(obj Handle, name string) bool {
	kid, ok := d.DetachField(obj, name)
	if !ok {
		return false
	}
	d.Free(kid)
	return true
}

// Replace splices item into the chain position of the i-th child and
// destroys the old child.
func (d *Doc) Replace(c Handle, i int, item Handle) bool {
	n, err := d.resolve(c)
	if err != nil {
		return false
	}
	if i < 0 || i >= len(n.kids) {
		return false
	}
	if _, err := d.at(item); err != nil {
		return false
	}
	old := n.kids[i]
	n.kids[i] = item
	d.Free(old)
	return true
}

// ReplaceField replaces the first member matching name's hash, assigning
// name's hash (and text) to item.
func (d *Doc) ReplaceField(obj Handle, name string, item Handle) bool {
	hash := d.hash([]byte(name))
	i, ok := d.fieldIndex(obj, hash)
	if !ok {
		return false
	}
	in, err := d.at(item)
	if err != nil {
		return false
	}
	in.named = true
	in.nameHash = hash
	if d.names {
		in.name = name
	}
	return d.Replace(obj, i, item)
}

func (d *Doc) fieldIndex(obj Handle, hash uint32) (int, bool) {
	n, err := d.resolve(obj)
	if err != nil || n.typ != ObjectType {
		return 0, false
	}
	for i, kid := range n.kids {
		kn, err := d.at(kid)
		if err != nil {
			continue
		}
		if kn.nameHash == hash {
			return i, true
		}
	}
	return 0, false
}

// Free destroys h and, unless h is a reference, its entire subtree. All
// handles into the destroyed region become stale. Freeing an already
// stale handle is a no-op.
func (d *Doc) Free(h Handle) {
	n, err := d.at(h)
	if err != nil {
		return
	}
	if !n.ref {
		for _, kid := range n.kids {
			d.Free(kid)
		}
	}
	d.release(n, h.idx)
}
