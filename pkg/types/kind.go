package types

// Kind tells how a stage consumes its input
type Kind int

const (
	// KindMap transforms each element independently, one output per input
	KindMap Kind = iota + 1

	// KindReduce consumes the whole stream and yields a single value. A
	// reduce stage is terminal: nothing may follow it.
	KindReduce
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindReduce:
		return "reduce"
	default:
		return "unknown"
	}
}

// Terminal reports whether a stage of this kind ends a pipeline
func (k Kind) Terminal() bool {
	return k == KindReduce
}
