package thirteen

// Returns calls f on every evaluation and checks whatever it returned.
func Returns(f func() Predicate) Predicate {
	return &returns{f: f}
}

type returns struct {
	f func() Predicate
}

func (p *returns) Thirteen() bool {
	if p.f == nil {
		return false
	}
	return Is(p.f())
}

var _ = Predicate(&returns{})
