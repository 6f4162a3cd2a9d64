package constraint

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// IdentityTuple is the canonical subset of a record used both to
// compute its uid and to find equivalents. Descriptions and user
// wording never participate.
type IdentityTuple struct {
	Name     string
	RuleKind string
	Windows  []Window
	Days     []Weekday
	Scope    Scope
}

// normalizeText lowercases and collapses whitespace for identity
// comparison; paraphrased duplicates differ only in fields that are
// excluded from the tuple, so name normalization stays conservative.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// IdentityOf computes the canonical identity tuple of a record.
func IdentityOf(r *Record) IdentityTuple {
	windows := make([]Window, len(r.Windows))
	for i, w := range r.Windows {
		windows[i] = Window{
			Kind:  normalizeText(w.Kind),
			Start: strings.TrimSpace(w.Start),
			End:   strings.TrimSpace(w.End),
		}
	}
	sort.Slice(windows, func(i, j int) bool {
		if windows[i].Kind != windows[j].Kind {
			return windows[i].Kind < windows[j].Kind
		}
		if windows[i].Start != windows[j].Start {
			return windows[i].Start < windows[j].Start
		}
		return windows[i].End < windows[j].End
	})
	return IdentityTuple{
		Name:     normalizeText(r.Name),
		RuleKind: normalizeText(r.RuleKind),
		Windows:  windows,
		Days:     sortedDays(r.DaysOfWeek),
		Scope:    r.Scope,
	}
}

// Key renders the tuple as a stable string for hashing and map keys.
func (t IdentityTuple) Key() string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString("\x1f")
	b.WriteString(t.RuleKind)
	b.WriteString("\x1f")
	for _, w := range t.Windows {
		b.WriteString(w.Kind)
		b.WriteString("|")
		b.WriteString(w.Start)
		b.WriteString("|")
		b.WriteString(w.End)
		b.WriteString(";")
	}
	b.WriteString("\x1f")
	for _, d := range t.Days {
		b.WriteString(string(d))
		b.WriteString(",")
	}
	b.WriteString("\x1f")
	b.WriteString(string(t.Scope))
	return b.String()
}

// ComputeUID derives the content-addressed uid of a record. Two
// records with identical identity tuples always produce the same uid,
// independent of description wording or days-of-week order.
func ComputeUID(r *Record) string {
	sum := sha256.Sum256([]byte(IdentityOf(r).Key()))
	return "cr_" + hex.EncodeToString(sum[:])[:16]
}
