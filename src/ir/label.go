package ir

// AddLabel appends a (name, offset) pair to the label table (add_label).
// The label table supports the back-end collaborator in resolving forward
// jumps after code emission.
func (ctx *Context) AddLabel(name string, offset int) {
	ctx.Labels = append(ctx.Labels, LabelEntry{Name: name, Offset: offset})
}

// FindLabelOffset returns the offset of the first label matching name, or
// -1 if none exists (find_label_offset). Kept as a linear scan: spec.md §9
// permits replacing it with a hashmap but does not require it, and in
// practice N is small (one label per basic block).
func (ctx *Context) FindLabelOffset(name string) int {
	for _, l := range ctx.Labels {
		if l.Name == name {
			return l.Offset
		}
	}
	return -1
}
