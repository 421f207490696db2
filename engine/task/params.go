package task

// -----------------------------------------------------------------------------
// Params
// -----------------------------------------------------------------------------

// Params is the ordered parameter mapping a task declares for output
// identity. Only fields meaningful to the output location belong here; a
// scheduler may track additional fields, but those must be excluded
// explicitly by the task author, not left to accident.
//
// Insertion order is preserved for iteration, but it never influences the
// canonical path: the path builder sorts pairs itself.
type Params struct {
	keys   []string
	values map[string]string
}

func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set adds or replaces a parameter and returns the receiver for chaining.
// Replacing an existing key keeps its original position.
func (p *Params) Set(key, value string) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value, ok := p.values[key]
	return value, ok
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

func (p *Params) Clone() *Params {
	clone := NewParams()
	if p == nil {
		return clone
	}
	for _, key := range p.keys {
		clone.Set(key, p.values[key])
	}
	return clone
}
