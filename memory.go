package main

// Memory is an unordered Value→Value mapping: initially empty, with no
// deletion and no scoping. Keys are normalized through Value.mapKey so that
// SmallInt(n) and Integer(n) address the same cell, and every Time value
// shares one cell regardless of the instant it carries.
type Memory struct {
	cells map[string]cell
}

type cell struct {
	key Value
	val Value
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{cells: make(map[string]cell)}
}

// Load returns the value stored at key, or Null if absent.
func (m *Memory) Load(key Value) Value {
	if c, ok := m.cells[key.mapKey()]; ok {
		return c.val
	}
	return Null()
}

// Store writes val at key, overwriting any prior value.
func (m *Memory) Store(key, val Value) {
	m.cells[key.mapKey()] = cell{key: key, val: val}
}

// Len reports how many distinct cells have ever been written. It exists for
// the debug dumper and tests, not for any language-level operation.
func (m *Memory) Len() int { return len(m.cells) }

// Each calls f once per stored cell, in no particular order, for the debug
// dumper's use. Language-level operations never observe iteration order.
func (m *Memory) Each(f func(key, val Value)) {
	for _, c := range m.cells {
		f(c.key, c.val)
	}
}
