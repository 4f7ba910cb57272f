package geometry

// InSpan reports whether v lies on the closed interval between a and b.
// The endpoints may be given in either order.
func InSpan(v, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}
