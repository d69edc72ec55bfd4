package parse

import "github.com/sjson-format/go-sjson/ir"

type parseOpts struct {
	docOpts []ir.Option
}

type Option func(*parseOpts)

// WithHasher sets the member-name hash function for the built document.
func WithHasher(h ir.Hasher) Option {
	return func(o *parseOpts) { o.docOpts = append(o.docOpts, ir.WithHasher(h)) }
}

// WithAllocator sets the node allocator for the built document.
func WithAllocator(a ir.Allocator) Option {
	return func(o *parseOpts) { o.docOpts = append(o.docOpts, ir.WithAllocator(a)) }
}

// DiscardNames drops member-name text from the built document, keeping
// hashes only.
func DiscardNames() Option {
	return func(o *parseOpts) { o.docOpts = append(o.docOpts, ir.DiscardNames()) }
}
