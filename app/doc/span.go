package doc

import "sort"

// Span is a contiguous [Start, End) range of rune offsets.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers nothing.
func (s Span) Empty() bool { return s.End <= s.Start }

// Contains reports whether off lies inside the span.
func (s Span) Contains(off int) bool { return off >= s.Start && off < s.End }

// spanSet keeps spans sorted, disjoint and non-adjacent, so a tag behaves
// like a set of characters.
type spanSet []Span

func (ss spanSet) contains(off int) bool {
	i := sort.Search(len(ss), func(i int) bool { return ss[i].End > off })
	return i < len(ss) && ss[i].Start <= off
}

func (ss spanSet) add(sp Span) spanSet {
	if sp.Empty() {
		return ss
	}
	out := make(spanSet, 0, len(ss)+1)
	inserted := false
	for _, s := range ss {
		switch {
		case s.End < sp.Start:
			out = append(out, s)
		case s.Start > sp.End:
			if !inserted {
				out = append(out, sp)
				inserted = true
			}
			out = append(out, s)
		default:
			// Overlapping or touching: fold into sp.
			sp.Start = min(sp.Start, s.Start)
			sp.End = max(sp.End, s.End)
		}
	}
	if !inserted {
		out = append(out, sp)
	}
	return out
}

func (ss spanSet) remove(sp Span) spanSet {
	if sp.Empty() {
		return ss
	}
	out := make(spanSet, 0, len(ss)+1)
	for _, s := range ss {
		if s.End <= sp.Start || s.Start >= sp.End {
			out = append(out, s)
			continue
		}
		if s.Start < sp.Start {
			out = append(out, Span{s.Start, sp.Start})
		}
		if s.End > sp.End {
			out = append(out, Span{sp.End, s.End})
		}
	}
	return out
}

// deleteRange drops the characters in sp and closes the gap.
func (ss spanSet) deleteRange(sp Span) spanSet {
	n := sp.Len()
	if n <= 0 {
		return ss
	}
	mapOff := func(x int) int {
		switch {
		case x <= sp.Start:
			return x
		case x < sp.End:
			return sp.Start
		default:
			return x - n
		}
	}
	var out spanSet
	for _, s := range ss {
		out = out.add(Span{mapOff(s.Start), mapOff(s.End)})
	}
	return out
}

// insertAt opens a gap of n runes at off. Inserted text joins a span only
// when off is strictly inside it.
func (ss spanSet) insertAt(off, n int) spanSet {
	if n <= 0 {
		return ss
	}
	out := make(spanSet, len(ss))
	for i, s := range ss {
		switch {
		case off <= s.Start:
			s.Start += n
			s.End += n
		case off < s.End:
			s.End += n
		}
		out[i] = s
	}
	return out
}
