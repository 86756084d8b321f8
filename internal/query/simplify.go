package query

// Simplify returns a canonicalized copy of q: an And with an AllTerm side
// reduces to its other side, an Or with an AllTerm side reduces to
// AllTerm, and adjacent navigations with the same
// direction and edge type merge by summing their bounds (Max stays
// absorbing) unless the earlier step filters its intermediate nodes.
// Simplify is idempotent: Simplify(Simplify(q)) deep-equals Simplify(q).
func (q *Query) Simplify() *Query {
	c := q.Clone()
	c.Term = simplifyTerm(q.Term)
	c.Navigation = foldNavigations(q.Navigation)
	for i := range c.Navigation {
		if c.Navigation[i].Term != nil {
			c.Navigation[i].Term = simplifyTerm(c.Navigation[i].Term)
		}
	}
	return c
}

func simplifyTerm(t Term) Term {
	switch n := t.(type) {
	case And:
		return AndTerms(simplifyTerm(n.Left), simplifyTerm(n.Right))
	case Or:
		left, right := simplifyTerm(n.Left), simplifyTerm(n.Right)
		if _, ok := left.(AllTerm); ok {
			return left
		}
		if _, ok := right.(AllTerm); ok {
			return right
		}
		return Or{Left: left, Right: right}
	case Not:
		return Not{Term: simplifyTerm(n.Term)}
	default:
		return t
	}
}

func foldNavigations(navs []Navigation) []Navigation {
	if len(navs) == 0 {
		return nil
	}
	out := make([]Navigation, 0, len(navs))
	cur := navs[0]
	for _, n := range navs[1:] {
		if cur.SameShape(n) {
			cur = cur.Combine(n)
			continue
		}
		out = append(out, cur)
		cur = n
	}
	out = append(out, cur)
	return out
}
