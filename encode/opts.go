package encode

type EncodeOption func(*EncState)

// Compact renders without newlines or indentation, a single line with a
// ": " separator after keys.
func Compact() EncodeOption {
	return func(es *EncState) { es.compact = true }
}

// Depth sets the starting indentation depth for the indented mode.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors turns on ANSI coloring of the output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
