package obj

// LineKind identifies the geometry statement a line carried
type LineKind int

const (
	LineVertex LineKind = iota
	LineFace
)

func (k LineKind) String() string {
	switch k {
	case LineVertex:
		return "vertex"
	case LineFace:
		return "face"
	}
	return "unknown"
}

// SkipReason says why a line did not contribute to the mesh
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipMalformedVertex
	SkipMalformedFaceRef
	SkipFaceOutOfRange
	SkipFaceTooFewRefs
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipMalformedVertex:
		return "malformed vertex"
	case SkipMalformedFaceRef:
		return "malformed face reference"
	case SkipFaceOutOfRange:
		return "face reference out of range"
	case SkipFaceTooFewRefs:
		return "face has too few references"
	}
	return "unknown"
}

// LineOutcome is the result of parsing one vertex or face line
type LineOutcome struct {
	Line   int // 1-based
	Kind   LineKind
	Skip   SkipReason
	Detail string
}

// Skipped reports whether the line was dropped
func (o LineOutcome) Skipped() bool {
	return o.Skip != SkipNone
}

// Report collects the outcome of every vertex and face line.
// Other lines are ignored and not reported.
type Report struct {
	Outcomes []LineOutcome
}

func (r *Report) add(line int, kind LineKind, skip SkipReason, detail string) {
	r.Outcomes = append(r.Outcomes, LineOutcome{Line: line, Kind: kind, Skip: skip, Detail: detail})
}

// Skipped returns the outcomes of dropped lines in file order
func (r *Report) Skipped() []LineOutcome {
	if r == nil {
		return nil
	}
	var skipped []LineOutcome
	for _, o := range r.Outcomes {
		if o.Skipped() {
			skipped = append(skipped, o)
		}
	}
	return skipped
}

// Counts returns the number of dropped lines per reason
func (r *Report) Counts() map[SkipReason]int {
	counts := make(map[SkipReason]int)
	for _, o := range r.Skipped() {
		counts[o.Skip]++
	}
	return counts
}
