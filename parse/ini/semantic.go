package ini

// =========================
// Lookup
// =========================
//
// Names are matched with NamesEqual. When a name occurs more than once
// the first occurrence wins, for sections as well as for keys within a
// section, which is what GetPrivateProfileString does.

// Section returns the first section whose name matches.
func (d *Document) Section(name string) (*SectionNode, bool) {
	if i := d.sectionIndex(name); i >= 0 {
		return d.Sections[i], true
	}
	return nil, false
}

// KeyValue returns the first key in the section that matches.
func (n *SectionNode) KeyValue(key string) (*KeyValueNode, bool) {
	return firstKeyValue(n.Children, key)
}

// KeyValue returns the first matching key that precedes every section.
func (d *Document) KeyValue(key string) (*KeyValueNode, bool) {
	return firstKeyValue(d.NodesOutsideSection, key)
}

func firstKeyValue(nodes []SectionChildNode, key string) (*KeyValueNode, bool) {
	for _, c := range nodes {
		if kv, ok := c.(*KeyValueNode); ok && NamesEqual(kv.Key, key) {
			return kv, true
		}
	}
	return nil, false
}

// Get returns the value of key in section.
func (d *Document) Get(section, key string) (string, error) {
	s, ok := d.Section(section)
	if !ok {
		return "", Error.Errorf("%w: [%s]", ErrSectionNotFound, section)
	}
	kv, ok := s.KeyValue(key)
	if !ok {
		return "", Error.Errorf("%w: [%s] %s", ErrKeyNotFound, section, key)
	}
	return kv.Value, nil
}

// SectionNames lists distinct section names in file order, spelled as
// they first appear.
func (d *Document) SectionNames() []string {
	names := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		names = appendDistinct(names, s.Name)
	}
	return names
}

// Keys lists distinct keys of the section in file order.
func (n *SectionNode) Keys() []string {
	return keysOf(n.Children)
}

func keysOf(nodes []SectionChildNode) []string {
	var keys []string
	for _, c := range nodes {
		if kv, ok := c.(*KeyValueNode); ok {
			keys = appendDistinct(keys, kv.Key)
		}
	}
	return keys
}

func appendDistinct(names []string, name string) []string {
	for _, n := range names {
		if NamesEqual(n, name) {
			return names
		}
	}
	return append(names, name)
}

func hasName(m map[string]string, name string) bool {
	for n := range m {
		if NamesEqual(n, name) {
			return true
		}
	}
	return false
}

// ToMap flattens the document into section -> key -> value. Keys that
// precede every section are stored under the empty section name; a "[]"
// section shares that entry and loses to them on conflicts.
func (d *Document) ToMap() map[string]map[string]string {
	out := make(map[string]map[string]string)
	if keys := keysOf(d.NodesOutsideSection); len(keys) > 0 {
		m := make(map[string]string, len(keys))
		for _, k := range keys {
			kv, _ := d.KeyValue(k)
			m[k] = kv.Value
		}
		out[""] = m
	}
	for _, name := range d.SectionNames() {
		s, _ := d.Section(name)
		m, ok := out[name]
		if !ok {
			m = make(map[string]string)
			out[name] = m
		}
		for _, k := range s.Keys() {
			if hasName(m, k) {
				continue
			}
			kv, _ := s.KeyValue(k)
			m[k] = kv.Value
		}
	}
	return out
}
