// Public domain.

package aspect

// ResolvePoints returns the active points of s restricted to requested,
// in the order of the subject's own active list.  With nothing requested
// it returns the subject's own active set.
func ResolvePoints(s *Subject, requested []string) []string {
	own := s.ActivePoints()
	if len(requested) == 0 {
		return intersect(own, own)
	}
	return intersect(own, requested)
}

// ResolveDualPoints resolves the points active in both subjects:
// (requested ∩ a) ∩ b, in the order of a's active list.
func ResolveDualPoints(a, b *Subject, requested []string) []string {
	return intersect(ResolvePoints(a, requested), b.ActivePoints())
}

// intersect returns members of base also in filter, in base order,
// without duplicates.
func intersect(base, filter []string) []string {
	in := make(map[string]bool, len(filter))
	for _, n := range filter {
		in[n] = true
	}
	seen := make(map[string]bool, len(base))
	r := []string{}
	for _, n := range base {
		if in[n] && !seen[n] {
			seen[n] = true
			r = append(r, n)
		}
	}
	return r
}

// resolved is a point ready for pairing.
type resolved struct {
	*Point
	id   int
	kind Kind
}

// points looks up point data and reference IDs for names, validating
// positions.
func (e *engine) points(op string, s *Subject, names []string) ([]resolved, error) {
	r := make([]resolved, len(names))
	for i, n := range names {
		p, err := s.point(n)
		if err != nil {
			return nil, err
		}
		if !validPos(p.Position) {
			return nil, inputErr(op, "subject %q point %q: position %g not in range [0, 360)",
				s.Name, n, p.Position)
		}
		id, err := e.ids.lookup(n)
		if err != nil {
			return nil, err
		}
		r[i] = resolved{p, id, pointKind(p)}
	}
	return r, nil
}
