package property

import (
	"math"

	"github.com/grindlemire/go-panels/internal/debug"
)

// Metadata configures a property at registration.
type Metadata[T any] struct {
	Default T
	Flags   Flags

	// Coerce normalizes incoming values before they are compared and stored.
	Coerce func(v T) T

	// Equal replaces the default comparison. The default compares with ==
	// and treats two float64 NaNs as equal.
	Equal func(a, b T) bool

	// Changed runs after the new value is stored and before the owner is
	// notified.
	Changed func(o Owner, oldValue, newValue T)
}

// Property is a typed handle on a registered descriptor.
type Property[T any] struct {
	desc *Descriptor
	meta Metadata[T]
}

// Register adds a property to t. It panics if the name is already visible
// on t, including through parent tables.
func Register[T any](t *Table, name string, meta Metadata[T]) *Property[T] {
	return register(t, name, false, meta)
}

// RegisterAttached adds a property that a container type defines and reads
// from its children.
func RegisterAttached[T any](t *Table, name string, meta Metadata[T]) *Property[T] {
	return register(t, name, true, meta)
}

func register[T any](t *Table, name string, attached bool, meta Metadata[T]) *Property[T] {
	if meta.Equal == nil {
		meta.Equal = equal[T]
	}
	if meta.Coerce != nil {
		meta.Default = meta.Coerce(meta.Default)
	}
	return &Property[T]{
		desc: t.add(name, attached, meta.Flags, meta.Default),
		meta: meta,
	}
}

// Descriptor returns the untyped descriptor.
func (p *Property[T]) Descriptor() *Descriptor { return p.desc }

// Name returns the property name.
func (p *Property[T]) Name() string { return p.desc.Name }

// Default returns the registration-time default.
func (p *Property[T]) Default() T { return p.meta.Default }

// Get returns o's value, or the default when o does not override it.
func (p *Property[T]) Get(o Owner) T {
	if v, ok := o.Properties().lookup(p.desc.ID); ok {
		return v.(T)
	}
	return p.meta.Default
}

// IsSet reports whether o overrides the default.
func (p *Property[T]) IsSet(o Owner) bool {
	_, ok := o.Properties().lookup(p.desc.ID)
	return ok
}

// Set stores v on o. Change hooks run only when the effective value changes.
func (p *Property[T]) Set(o Owner, v T) {
	if p.meta.Coerce != nil {
		v = p.meta.Coerce(v)
	}
	old := p.Get(o)
	o.Properties().put(p.desc.ID, v)
	if p.meta.Equal(old, v) {
		return
	}
	p.notify(o, old, v)
}

// Clear removes o's override, reverting to the default.
func (p *Property[T]) Clear(o Owner) {
	if !p.IsSet(o) {
		return
	}
	old := p.Get(o)
	o.Properties().remove(p.desc.ID)
	if p.meta.Equal(old, p.meta.Default) {
		return
	}
	p.notify(o, old, p.meta.Default)
}

func (p *Property[T]) notify(o Owner, oldValue, newValue T) {
	debug.Log("property: %s %v -> %v (%v)", p.desc.FullName(), oldValue, newValue, p.desc.Flags)
	if p.meta.Changed != nil {
		p.meta.Changed(o, oldValue, newValue)
	}
	o.PropertyChanged(p.desc)
}

func equal[T any](a, b T) bool {
	if x, ok := any(a).(float64); ok {
		y := any(b).(float64)
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	}
	return any(a) == any(b)
}
