package id3

import (
	"fmt"
	"unicode/utf8"
)

// LengthRule is an advisory length constraint for a frame's principal
// value. Zero means unconstrained in that direction.
type LengthRule struct {
	Min, Max int
}

// lengthRules collects the length recommendations the format attaches
// to individual frames, keyed by canonical 4-byte ID. None of them are
// enforced when parsing or serializing; real files break all of them.
// In particular TIME values in the wild are frequently not HHMM, so
// even Validate findings for it are suspect.
var lengthRules = map[FrameType]LengthRule{
	"UFID": {Max: 64},
	"MCDI": {Max: 804},
	"APIC": {Max: 64},
	"TCOP": {Min: 5},
	"TPRO": {Min: 5},
	"TDAT": {Min: 4, Max: 4},
	"TYER": {Min: 4, Max: 4},
	"TIME": {Min: 4, Max: 4},
	"TKEY": {Max: 3},
	"TLAN": {Min: 3, Max: 3},
	"TSRC": {Min: 12, Max: 12},
}

// Validate checks the tag's frames against the advisory length rules
// and returns one error per violation. An empty result means no
// finding, not a guarantee of conformance.
func (t *Tag) Validate() []error {
	var errs []error
	for _, f := range t.Frames {
		id := f.ID
		if t.Version == Version22 {
			conv, ok := ConvertID(id, Version22, Version23)
			if !ok {
				continue
			}
			id = conv
		}
		rule, ok := lengthRules[id]
		if !ok {
			continue
		}
		n, ok := advisoryLength(f)
		if !ok {
			continue
		}
		if rule.Min > 0 && n < rule.Min {
			errs = append(errs, fmt.Errorf("frame %s: length %d below recommended minimum %d", string(f.ID), n, rule.Min))
		}
		if rule.Max > 0 && n > rule.Max {
			errs = append(errs, fmt.Errorf("frame %s: length %d above recommended maximum %d", string(f.ID), n, rule.Max))
		}
	}
	return errs
}

// advisoryLength extracts the value the rule applies to. For text
// frames that is the first value in characters, for UFID the
// identifier in bytes, for APIC the description in characters.
func advisoryLength(f Frame) (int, bool) {
	switch c := f.Content.(type) {
	case Text:
		if len(c.Values) == 0 {
			return 0, true
		}
		return utf8.RuneCountInString(c.Values[0]), true
	case UniqueFileID:
		return len(c.Identifier), true
	case Picture:
		return utf8.RuneCountInString(c.Description), true
	case Binary:
		return len(c.Data), true
	}
	return 0, false
}
