package cell

// PreviousSession returns the session p reuses realized state from.
func PreviousSession(p *Provider) *Provider {
	return p.previous.Load()
}
