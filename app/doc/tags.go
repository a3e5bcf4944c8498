package doc

import "slices"

// AddTag applies t to the characters in sp.
func (d *Document) AddTag(t Tag, sp Span) {
	d.tags[t] = d.tags[t].add(d.clamp(sp))
}

// RemoveTag removes t from the characters in sp. Characters outside sp keep
// the tag.
func (d *Document) RemoveTag(t Tag, sp Span) {
	d.tags[t] = d.tags[t].remove(d.clamp(sp))
}

// ClearTag removes t from the whole document.
func (d *Document) ClearTag(t Tag) {
	d.tags[t] = nil
}

// HasTag reports whether the character at off carries t.
func (d *Document) HasTag(t Tag, off int) bool {
	return d.tags[t].contains(off)
}

// TagsAt returns the set of tags carried by the character at off.
func (d *Document) TagsAt(off int) TagSet {
	var set TagSet
	for t := range d.tags {
		if d.tags[t].contains(off) {
			set = set.With(Tag(t))
		}
	}
	return set
}

// Spans returns a copy of the spans carrying t, in order.
func (d *Document) Spans(t Tag) []Span {
	return append([]Span(nil), d.tags[t]...)
}

// ToggleTag flips t on the selection. The first selected character decides
// the direction: if it carries t the tag is removed from the whole
// selection, otherwise it is added. It reports whether the tag was added.
func (d *Document) ToggleTag(t Tag) (bool, error) {
	sel, ok := d.Selection()
	if !ok {
		return false, ErrNoSelection
	}
	if d.HasTag(t, sel.Start) {
		d.RemoveTag(t, sel)
		return false, nil
	}
	d.AddTag(t, sel)
	return true, nil
}

// Run is a stretch of text whose characters all carry the same tags.
type Run struct {
	Span
	Tags TagSet
}

// Runs splits sp into maximal runs of constant tag membership.
func (d *Document) Runs(sp Span) []Run {
	sp = d.clamp(sp)
	if sp.Empty() {
		return nil
	}
	// Collect every tag boundary inside sp.
	cuts := map[int]struct{}{sp.Start: {}, sp.End: {}}
	for _, set := range d.tags {
		for _, s := range set {
			if s.Start > sp.Start && s.Start < sp.End {
				cuts[s.Start] = struct{}{}
			}
			if s.End > sp.Start && s.End < sp.End {
				cuts[s.End] = struct{}{}
			}
		}
	}
	points := make([]int, 0, len(cuts))
	for p := range cuts {
		points = append(points, p)
	}
	slices.Sort(points)

	var runs []Run
	for i := 0; i+1 < len(points); i++ {
		r := Run{Span: Span{points[i], points[i+1]}, Tags: d.TagsAt(points[i])}
		if n := len(runs); n > 0 && runs[n-1].Tags == r.Tags {
			runs[n-1].End = r.End
			continue
		}
		runs = append(runs, r)
	}
	return runs
}
