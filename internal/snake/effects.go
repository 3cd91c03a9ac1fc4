package snake

// ActiveEffects tracks the effects currently influencing the session.
// Duration-based effects count down in wall-clock seconds; picking one up
// again before it expires refreshes it to the full duration rather than
// stacking. Shield is binary: present until consumed by one collision.
type ActiveEffects struct {
	timers map[PowerUpKind]float64
	shield bool
}

// NewActiveEffects creates an empty effect set.
func NewActiveEffects() *ActiveEffects {
	return &ActiveEffects{
		timers: make(map[PowerUpKind]float64),
	}
}

// Apply activates kind. For duration-based kinds the timer is (re)set to
// duration. Applying Shield is idempotent.
func (e *ActiveEffects) Apply(kind PowerUpKind, duration float64) {
	if kind == Shield {
		e.shield = true
		return
	}
	e.timers[kind] = duration
}

// Tick decrements all duration-based timers by dt and removes expired
// ones. Shield is unaffected by time.
func (e *ActiveEffects) Tick(dt float64) {
	for kind, remaining := range e.timers {
		remaining -= dt
		if remaining <= 0 {
			delete(e.timers, kind)
		} else {
			e.timers[kind] = remaining
		}
	}
}

// Active reports whether kind is currently in effect.
func (e *ActiveEffects) Active(kind PowerUpKind) bool {
	if kind == Shield {
		return e.shield
	}
	return e.timers[kind] > 0
}

// Remaining returns the seconds left for a duration-based effect, or 0 if
// it is not active. Shield has no duration and always reports 0.
func (e *ActiveEffects) Remaining(kind PowerUpKind) float64 {
	return e.timers[kind]
}

// ConsumeShield uses up the shield if present. Returns whether a shield
// was available to consume.
func (e *ActiveEffects) ConsumeShield() bool {
	if !e.shield {
		return false
	}
	e.shield = false
	return true
}

// Reset clears all effects.
func (e *ActiveEffects) Reset() {
	clear(e.timers)
	e.shield = false
}
