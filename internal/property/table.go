package property

import (
	"fmt"
	"sort"
	"sync"
)

// Descriptor is the untyped identity of a registered property.
type Descriptor struct {
	ID       int
	Name     string
	Owner    string // name of the Table that registered it
	Attached bool   // set on children, read by the registering container
	Flags    Flags

	defaultValue any
}

// DefaultValue returns the registration-time default, boxed.
func (d *Descriptor) DefaultValue() any {
	return d.defaultValue
}

// ValueType returns the Go type of the property's values, as printed by %T.
func (d *Descriptor) ValueType() string {
	return fmt.Sprintf("%T", d.defaultValue)
}

// FullName returns "Owner.Name".
func (d *Descriptor) FullName() string {
	return d.Owner + "." + d.Name
}

// Table is the descriptor table of one node type.
type Table struct {
	name   string
	parent *Table
	byName map[string]*Descriptor
	order  []*Descriptor
}

var (
	registryMu sync.Mutex
	tables     []*Table
	nextID     int
)

// NewTable creates and registers a descriptor table. parent may be nil.
// Tables are created at package initialization and live for the process.
func NewTable(name string, parent *Table) *Table {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, t := range tables {
		if t.name == name {
			panic(fmt.Sprintf("property: duplicate table %q", name))
		}
	}
	t := &Table{name: name, parent: parent, byName: make(map[string]*Descriptor)}
	tables = append(tables, t)
	return t
}

// Name returns the table's node type name.
func (t *Table) Name() string { return t.name }

// Parent returns the table this one inherits from, or nil.
func (t *Table) Parent() *Table { return t.parent }

// Lookup finds a property by name on this table or any ancestor table.
func (t *Table) Lookup(name string) (*Descriptor, bool) {
	for tt := t; tt != nil; tt = tt.parent {
		if d, ok := tt.byName[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// Own returns the descriptors registered directly on t, in registration order.
func (t *Table) Own() []*Descriptor {
	out := make([]*Descriptor, len(t.order))
	copy(out, t.order)
	return out
}

// All returns the descriptors visible on t, inherited ones first.
func (t *Table) All() []*Descriptor {
	var chain []*Table
	for tt := t; tt != nil; tt = tt.parent {
		chain = append(chain, tt)
	}
	var out []*Descriptor
	for i := len(chain) - 1; i >= 0; i-- {
		out = append(out, chain[i].order...)
	}
	return out
}

// Tables returns every registered table sorted by name.
func Tables() []*Table {
	registryMu.Lock()
	defer registryMu.Unlock()

	out := make([]*Table, len(tables))
	copy(out, tables)
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (t *Table) add(name string, attached bool, flags Flags, def any) *Descriptor {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := t.Lookup(name); exists {
		panic(fmt.Sprintf("property: %s.%s registered twice", t.name, name))
	}
	nextID++
	d := &Descriptor{
		ID:           nextID,
		Name:         name,
		Owner:        t.name,
		Attached:     attached,
		Flags:        flags,
		defaultValue: def,
	}
	t.byName[name] = d
	t.order = append(t.order, d)
	return d
}
