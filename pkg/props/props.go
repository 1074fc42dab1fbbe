package props

// Property is a single system property assignment
type Property struct {
	Key   string
	Value string
}

// String renders the property as key=value
func (p Property) String() string {
	return p.Key + "=" + p.Value
}

// Properties is an insertion-ordered key/value set for one partition
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties creates an empty property set
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set assigns value to key. A key that already exists keeps its position.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present
func (p *Properties) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of properties
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Entries returns the properties in insertion order
func (p *Properties) Entries() []Property {
	if p == nil {
		return nil
	}
	entries := make([]Property, 0, len(p.keys))
	for _, k := range p.keys {
		entries = append(entries, Property{Key: k, Value: p.values[k]})
	}
	return entries
}

// Lines returns key=value strings in insertion order
func (p *Properties) Lines() []string {
	entries := p.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return lines
}

// PartitionProps maps partition names to their properties, in insertion order
type PartitionProps struct {
	partitions []string
	props      map[string]*Properties
}

// New creates an empty PartitionProps
func New() *PartitionProps {
	return &PartitionProps{props: make(map[string]*Properties)}
}

// Partition returns the property set for name, creating it at the end of the
// partition order if it does not exist yet.
func (pp *PartitionProps) Partition(name string) *Properties {
	if pp.props == nil {
		pp.props = make(map[string]*Properties)
	}
	if p, ok := pp.props[name]; ok {
		return p
	}
	p := NewProperties()
	pp.partitions = append(pp.partitions, name)
	pp.props[name] = p
	return p
}

// Set assigns key=value inside partition
func (pp *PartitionProps) Set(partition, key, value string) {
	pp.Partition(partition).Set(key, value)
}

// Get looks up a property of a partition
func (pp *PartitionProps) Get(partition, key string) (string, bool) {
	if pp == nil {
		return "", false
	}
	return pp.props[partition].Get(key)
}

// Lookup returns the property set of a partition without creating it
func (pp *PartitionProps) Lookup(partition string) (*Properties, bool) {
	if pp == nil {
		return nil, false
	}
	p, ok := pp.props[partition]
	return p, ok
}

// Partitions returns partition names in insertion order, including empty ones
func (pp *PartitionProps) Partitions() []string {
	if pp == nil {
		return nil
	}
	return append([]string(nil), pp.partitions...)
}

// Len returns the number of partitions
func (pp *PartitionProps) Len() int {
	if pp == nil {
		return 0
	}
	return len(pp.partitions)
}
