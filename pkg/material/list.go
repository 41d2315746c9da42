package material

// Record is the presentation state of one material in the loaded scene
type Record struct {
	ID      int
	Color   Color
	Name    string
	Visible bool
}

// NewRecord creates a visible record for id
func NewRecord(id int) Record {
	info := Lookup(id)
	return Record{
		ID:      id,
		Color:   info.Color,
		Name:    info.Name,
		Visible: true,
	}
}

// List owns the material records of one loaded file, in discovery order.
// It is replaced as a whole when another file is loaded.
type List struct {
	records []Record
	index   map[int]int
}

// NewList creates visible records for the given ids. Duplicates are
// ignored.
func NewList(ids []int) *List {
	l := &List{
		records: make([]Record, 0, len(ids)),
		index:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		if _, ok := l.index[id]; ok {
			continue
		}
		l.index[id] = len(l.records)
		l.records = append(l.records, NewRecord(id))
	}
	return l
}

// Len returns the number of materials
func (l *List) Len() int {
	return len(l.records)
}

// Records returns a copy of all records in discovery order
func (l *List) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// IDs returns the material ids in discovery order
func (l *List) IDs() []int {
	ids := make([]int, len(l.records))
	for i, r := range l.records {
		ids[i] = r.ID
	}
	return ids
}

// Get returns the record of id
func (l *List) Get(id int) (Record, bool) {
	i, ok := l.index[id]
	if !ok {
		return Record{}, false
	}
	return l.records[i], true
}

// Visible reports whether id is known and shown
func (l *List) Visible(id int) bool {
	r, ok := l.Get(id)
	return ok && r.Visible
}

// Toggle flips the visibility of id and returns the new value.
// Unknown ids are left alone and report false.
func (l *List) Toggle(id int) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.records[i].Visible = !l.records[i].Visible
	return l.records[i].Visible
}

// SetVisible sets the visibility of id. It reports whether id is known.
func (l *List) SetVisible(id int, visible bool) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.records[i].Visible = visible
	return true
}

// VisibleCount returns how many materials are shown
func (l *List) VisibleCount() int {
	n := 0
	for _, r := range l.records {
		if r.Visible {
			n++
		}
	}
	return n
}
