package meta

// Strategy identifies how an Engine executes match attempts.
type Strategy int

const (
	// UseWalker runs the backtracking tree walk on every subject.
	UseWalker Strategy = iota

	// UseWalkerPrefilter rejects subjects with a literal prefilter before
	// running the tree walk.
	UseWalkerPrefilter

	// UseLiteralSet decides matches by an ordered prefix scan over the
	// pattern's literal alternatives; the tree walk never runs.
	UseLiteralSet
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case UseWalker:
		return "UseWalker"
	case UseWalkerPrefilter:
		return "UseWalkerPrefilter"
	case UseLiteralSet:
		return "UseLiteralSet"
	default:
		return "Unknown"
	}
}
