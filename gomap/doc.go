// Package gomap converts between ir documents and dynamic Go values
// (nil, bool, int64, float64, string, []any, map[string]any). It backs
// format conversion and expression evaluation over documents.
//
// Object member order is lost in the map direction; FromAny inserts map
// members in sorted key order to keep output deterministic.
package gomap
