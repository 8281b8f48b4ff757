package matrix

// ActiveRanges returns the current X and Y ranges and whether the matrix
// is triangular, for a writer to translate absolute indices.
func (m *Matrix) ActiveRanges() (x, y Range, triangular bool) {
	return m.X, m.Y, m.Triangular
}

// Dims returns the active sub-rectangle's extents and the number of
// stored cells.
func (m *Matrix) Dims() (xl, yl, size int) {
	return m.X.Len(), m.Y.Len(), len(m.Values)
}

// Label returns the class label of the string at absolute index i in the
// original collection.
func (m *Matrix) Label(i int) float64 {
	return m.Labels[i]
}

// Src returns the source tag of the string at absolute index i, and
// whether one was present (the empty string is ambiguous with "absent",
// so ok distinguishes them).
func (m *Matrix) Src(i int) (src string, ok bool) {
	return m.Srcs[i], m.srcSet[i]
}
