// Package encode renders ir documents as text.
//
// Output is a strict JSON subset regardless of how permissive the parsed
// input was: keys are always quoted, ':' separates keys from values, ','
// separates members and elements. Two modes exist, the default indented
// multiline form and a compact single-line form.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(doc, doc.Root(), &buf); err != nil {
//	    return err
//	}
//
//	// compact
//	err := encode.Encode(doc, doc.Root(), &buf, encode.Compact())
//
// # Related Packages
//
//   - github.com/sjson-format/go-sjson/ir - document representation
//   - github.com/sjson-format/go-sjson/parse - parse text to documents
package encode
