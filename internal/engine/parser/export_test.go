package parser

import "time"

// SetClock replaces the clock used to time parses.
func (p *Instrumented) SetClock(now func() time.Time) {
	p.now = now
}
