package marktext

import "strings"

// markerKind identifies one of the recognized emphasis token shapes.
type markerKind uint8

const (
	markerBoldItalic markerKind = iota
	markerBold
	markerUnderline
	markerItalic
)

// markerTable lists tokens in match priority order: longest first, so
// "***" is never misread as "*" followed by "**".
var markerTable = [...]struct {
	lit    string
	kind   markerKind
	styles StyleSet
}{
	{"***", markerBoldItalic, StyleBold | StyleItalic},
	{"**", markerBold, StyleBold},
	{"__", markerUnderline, StyleUnderline},
	{"*", markerItalic, StyleItalic},
}

// occurrence is a marker token found by the tokenizer. pos and length
// are byte offsets; all marker tokens are ASCII so byte offsets are
// safe rune boundaries.
type occurrence struct {
	pos    int
	length int
	kind   markerKind
	styles StyleSet
	paired bool
}

// markerPair holds indices into the occurrence list for an open/close
// pair of the same kind.
type markerPair struct {
	open  int
	close int
}

// styleEvent adds or removes styles at a byte offset.
type styleEvent struct {
	add    bool
	styles StyleSet
}

// ParseLine parses inline emphasis markers in a single body line and
// returns the ordered styled segments. Unpaired markers are retained as
// literal text. The result always contains at least one segment.
func ParseLine(line string) []Segment {
	if !strings.ContainsAny(line, "*_") {
		return []Segment{{Text: line}}
	}
	occs := scanMarkers(line)
	pairs := pairMarkers(occs, line)
	events, consumed := buildEvents(occs, pairs, len(line))
	segs := mergeSegments(emitSegments(line, events, consumed))
	if len(segs) == 0 {
		// Pathological all-consumed input still yields one segment.
		return []Segment{{Text: line}}
	}
	return segs
}

// scanMarkers performs a single linear pass over the line, greedily
// matching the longest marker token at each position.
func scanMarkers(line string) []occurrence {
	var occs []occurrence
	for i := 0; i < len(line); {
		advanced := false
		for _, m := range markerTable {
			if strings.HasPrefix(line[i:], m.lit) {
				occs = append(occs, occurrence{pos: i, length: len(m.lit), kind: m.kind, styles: m.styles})
				i += len(m.lit)
				advanced = true
				break
			}
		}
		if !advanced {
			i++
		}
	}
	return occs
}

// pairMarkers resolves occurrences into open/close pairs with a stack
// keyed by marker kind. An occurrence closes the top of stack only if
// it is the same kind and the inner span is non-empty with no embedded
// newline; otherwise it is pushed, which allows nesting of differing
// kinds. Leftovers on the stack stay unpaired and render literally.
// Nearest-match wins on ambiguous sequences.
func pairMarkers(occs []occurrence, line string) []markerPair {
	var stack []int
	var pairs []markerPair
	for i := range occs {
		if n := len(stack); n > 0 {
			top := stack[n-1]
			if occs[top].kind == occs[i].kind {
				innerStart := occs[top].pos + occs[top].length
				innerEnd := occs[i].pos
				if innerEnd > innerStart && !strings.Contains(line[innerStart:innerEnd], "\n") {
					stack = stack[:n-1]
					occs[top].paired = true
					occs[i].paired = true
					pairs = append(pairs, markerPair{open: top, close: i})
					continue
				}
			}
		}
		stack = append(stack, i)
	}
	return pairs
}

// buildEvents converts pairs into add/remove events at the content
// boundaries and marks both marker tokens' bytes as consumed so they
// never reach the output.
func buildEvents(occs []occurrence, pairs []markerPair, n int) (map[int][]styleEvent, []bool) {
	events := make(map[int][]styleEvent, len(pairs)*2)
	consumed := make([]bool, n)
	for _, p := range pairs {
		open, close := occs[p.open], occs[p.close]
		for i := open.pos; i < open.pos+open.length; i++ {
			consumed[i] = true
		}
		for i := close.pos; i < close.pos+close.length; i++ {
			consumed[i] = true
		}
		contentStart := open.pos + open.length
		contentEnd := close.pos
		events[contentStart] = append(events[contentStart], styleEvent{add: true, styles: open.styles})
		events[contentEnd] = append(events[contentEnd], styleEvent{add: false, styles: open.styles})
	}
	return events, consumed
}

// emitSegments walks the line by byte offset, flushing the buffered
// text before applying the events at each offset. The active style set
// is tracked with per-style reference counts so overlapping pairs of
// the same style deactivate only after every removal.
func emitSegments(line string, events map[int][]styleEvent, consumed []bool) []Segment {
	var (
		segs   []Segment
		buf    []byte
		counts [3]int
		active StyleSet
	)
	flush := func() {
		if len(buf) > 0 {
			segs = append(segs, Segment{Styles: active, Text: string(buf)})
			buf = buf[:0]
		}
	}
	apply := func(evs []styleEvent) {
		for _, ev := range evs {
			for bit := 0; bit < 3; bit++ {
				s := StyleSet(1) << bit
				if !ev.styles.Has(s) {
					continue
				}
				if ev.add {
					counts[bit]++
				} else if counts[bit] > 0 {
					counts[bit]--
				}
			}
		}
		active = 0
		for bit := 0; bit < 3; bit++ {
			if counts[bit] > 0 {
				active |= StyleSet(1) << bit
			}
		}
	}
	for i := 0; i < len(line); i++ {
		if evs, ok := events[i]; ok {
			flush()
			apply(evs)
		}
		if !consumed[i] {
			buf = append(buf, line[i])
		}
	}
	flush()
	return segs
}

// mergeSegments coalesces adjacent segments with identical styles and
// alignment and drops empty ones, so a renderer never receives two
// neighbors with indistinguishable formatting.
func mergeSegments(segs []Segment) []Segment {
	var merged []Segment
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].Styles == seg.Styles && merged[n-1].Align == seg.Align {
			merged[n-1].Text += seg.Text
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}
