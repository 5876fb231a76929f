package planner

const (
	cleanPending = 2
	gentleBump   = 2
	gentleHeight = 2
	holeSlack    = 1
	bumpSlack    = 2
)

// cleanFilter narrows the pool toward tidy placements when the bot is under
// no pressure. Each step only applies if something survives it. When no
// placement is clean the pool falls back to back-to-back attacks, then to
// everything.
func cleanFilter(pool []Candidate, cy *cycle) []Candidate {
	if cy.danger >= lowDanger || cy.in.Pending > cleanPending {
		return pool
	}
	clean := filter(pool, func(c *Candidate) bool { return !c.Delta.Damaging() })
	if len(clean) == 0 {
		if b2b := filter(pool, func(c *Candidate) bool { return c.Qualifies() && c.Attack > 0 }); len(b2b) > 0 {
			return b2b
		}
		return pool
	}

	clean = narrow(clean, func(c *Candidate) bool {
		return c.Delta.Bumpiness <= gentleBump && c.Delta.MaxHeight <= gentleHeight
	})
	minHoles := clean[0].Analysis.Holes
	for i := range clean {
		minHoles = min(minHoles, clean[i].Analysis.Holes)
	}
	clean = narrow(clean, func(c *Candidate) bool { return c.Analysis.Holes <= minHoles+holeSlack })
	minBump := clean[0].Analysis.Bumpiness
	for i := range clean {
		minBump = min(minBump, clean[i].Analysis.Bumpiness)
	}
	clean = narrow(clean, func(c *Candidate) bool { return c.Analysis.Bumpiness <= minBump+bumpSlack })

	if keep := strategyPool(cy.strategy); keep != nil {
		clean = narrow(clean, keep)
	}
	return clean
}

func strategyPool(s Strategy) func(*Candidate) bool {
	switch s {
	case Downstack:
		return func(c *Candidate) bool { return c.Lines > 0 || c.Delta.Holes < 0 }
	case SpinConvert:
		return func(c *Candidate) bool { return c.Spin && c.Lines > 0 }
	case SpinBuild:
		return func(c *Candidate) bool { return c.Delta.SpinSlots > 0 || (c.Spin && c.Lines > 0) }
	case Opener:
		return func(c *Candidate) bool { return c.Lines == 0 || c.Qualifies() }
	}
	return nil
}

func filter(pool []Candidate, keep func(*Candidate) bool) []Candidate {
	var out []Candidate
	for i := range pool {
		if keep(&pool[i]) {
			out = append(out, pool[i])
		}
	}
	return out
}

// narrow filters but keeps the input when nothing would survive.
func narrow(pool []Candidate, keep func(*Candidate) bool) []Candidate {
	if out := filter(pool, keep); len(out) > 0 {
		return out
	}
	return pool
}
