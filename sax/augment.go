package sax

// Augmentation keys populated by the core parser.
const (
	AugLine      = "locator.line"
	AugColumn    = "locator.column"
	AugSynthetic = "event.synthetic"
)

// Augmentation is the per-event side channel of auxiliary metadata, such as
// the source location an event originated from. Each emitted event owns its
// augmentation; emitters must Clone before reuse so that no two events ever
// share one instance.
type Augmentation map[string]interface{}

// Clone returns an independent copy. Cloning nil yields nil.
func (a Augmentation) Clone() Augmentation {
	if a == nil {
		return nil
	}
	c := make(Augmentation, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Line is a convenience accessor for the AugLine key; it returns 0 when the
// event carries no location.
func (a Augmentation) Line() int {
	if v, ok := a[AugLine].(int); ok {
		return v
	}
	return 0
}

// Column is a convenience accessor for the AugColumn key.
func (a Augmentation) Column() int {
	if v, ok := a[AugColumn].(int); ok {
		return v
	}
	return 0
}

// Synthetic reports whether the event was fabricated by the balancer rather
// than scanned from the input.
func (a Augmentation) Synthetic() bool {
	v, ok := a[AugSynthetic].(bool)
	return ok && v
}
