package column

import (
	"sort"
)

// ChangeType kind of difference between two versions of a column.
type ChangeType string

const (
	Added   ChangeType = "added"
	Dropped ChangeType = "dropped"
	Altered ChangeType = "altered"
	Renamed ChangeType = "renamed"
)

// Change one column difference. From is nil for added columns, To for
// dropped ones.
type Change struct {
	Column string      `json:"column" yaml:"column"`
	Type   ChangeType  `json:"type" yaml:"type"`
	From   *Descriptor `json:"from,omitempty" yaml:"from,omitempty"`
	To     *Descriptor `json:"to,omitempty" yaml:"to,omitempty"`
}

// Diff compares two versions of a column set. A column of to whose
// RenameFrom names a column of from that to no longer has is a rename,
// altered too when anything besides the name changed. Defaults compare by
// fingerprint, so representation noise is not a change. Changes are
// ordered by column name.
func Diff(from, to Set) []Change {
	var changes []Change
	renamed := make(map[string]bool)
	for _, name := range to.Names() {
		d := to[name]
		old, ok := from[name]
		if !ok && d.RenameFrom != "" {
			if prev, had := from[d.RenameFrom]; had {
				if _, kept := to[d.RenameFrom]; !kept {
					renamed[d.RenameFrom] = true
					changes = append(changes, Change{Column: name, Type: Renamed, From: prev, To: d})
					if !sameColumn(prev, d) {
						changes = append(changes, Change{Column: name, Type: Altered, From: prev, To: d})
					}
					continue
				}
			}
		}
		switch {
		case !ok:
			changes = append(changes, Change{Column: name, Type: Added, To: d})
		case !sameColumn(old, d):
			changes = append(changes, Change{Column: name, Type: Altered, From: old, To: d})
		}
	}
	for _, name := range from.Names() {
		if _, ok := to[name]; !ok && !renamed[name] {
			changes = append(changes, Change{Column: name, Type: Dropped, From: from[name]})
		}
	}
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Column < changes[j].Column })
	return changes
}

// sameColumn compares everything but the rename metadata.
func sameColumn(a, b *Descriptor) bool {
	x, y := a.Clone(), b.Clone()
	x.RenameFrom, y.RenameFrom = "", ""
	return x.Equal(y)
}
