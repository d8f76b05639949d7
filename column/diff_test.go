package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	from := Set{
		"id":    BigInt().GeneratedAlwaysAsIdentity().MustBuild(),
		"qty":   Integer().Default(10).MustBuild(),
		"name":  Text().MustBuild(),
		"note":  Text().MustBuild(),
		"price": Numeric(5, 2).MustBuild(),
	}
	to := Set{
		"id":       BigInt().GeneratedAlwaysAsIdentity().MustBuild(),
		"qty":      Integer().Default("10").MustBuild(),
		"title":    Text().NotNull().RenameFrom("name").MustBuild(),
		"price":    Numeric(7, 2).MustBuild(),
		"added_at": TimestampWithTimeZone().MustBuild(),
	}
	changes := Diff(from, to)

	type row struct {
		column string
		typ    ChangeType
	}
	got := make([]row, len(changes))
	for i, c := range changes {
		got[i] = row{c.Column, c.Type}
	}
	assert.Equal(t, []row{
		{"added_at", Added},
		{"note", Dropped},
		{"price", Altered},
		{"title", Renamed},
		{"title", Altered},
	}, got)

	require.Len(t, changes, 5)
	assert.Nil(t, changes[0].From)
	assert.Nil(t, changes[1].To)
	assert.Equal(t, "text", changes[3].From.DataType)
}

func TestDiffPureRename(t *testing.T) {
	from := Set{"name": Text().MustBuild()}
	to := Set{"title": Text().RenameFrom("name").MustBuild()}
	changes := Diff(from, to)
	require.Len(t, changes, 1)
	assert.Equal(t, Renamed, changes[0].Type)
	assert.Equal(t, "title", changes[0].Column)
}

func TestDiffNoChanges(t *testing.T) {
	set := Set{"a": Boolean().Default("yes").MustBuild()}
	other := Set{"a": Boolean().Default(true).MustBuild()}
	assert.Empty(t, Diff(set, other))
}
