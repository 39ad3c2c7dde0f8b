package acquire

import (
	"time"

	"github.com/crisanalex08/RasbperryCode/x/mathx"
)

// Config controls cycle timing. The zero value is usable.
type Config struct {
	// CyclePeriod is the fixed inter-cycle delay, measured from the end of
	// one cycle's work to the start of the next (the period is delay plus
	// work, not wall-clock aligned). Default 1 s.
	CyclePeriod time.Duration
}

func (c Config) withDefaults() Config {
	if c.CyclePeriod <= 0 {
		c.CyclePeriod = time.Second
	}
	c.CyclePeriod = mathx.Clamp(c.CyclePeriod, time.Millisecond, time.Minute)
	return c
}
