// Package parse parses sjson text into ir documents.
//
// The accepted grammar is a permissive JSON superset:
//
//   - C and C++ style comments wherever whitespace may appear
//   - object member names as quoted strings or bare identifiers
//   - ':' or '=' between a member name and its value
//   - optional commas between elements and members
//   - an implicit top-level object when the document does not open with
//     '{' or '['
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`name = "alice" age = 30`))
//	if err != nil {
//	    var perr *parse.Error
//	    if errors.As(err, &perr) {
//	        // perr.Pos has the failure position
//	    }
//	    return err
//	}
//	root := doc.Root()
//
// Any malformed input aborts the whole parse; there is no partial result.
//
// # Related Packages
//
//   - github.com/sjson-format/go-sjson/ir - document representation
//   - github.com/sjson-format/go-sjson/encode - encode documents to text
//   - github.com/sjson-format/go-sjson/token - scanning primitives
package parse
