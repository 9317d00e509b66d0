package atom_test

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/kestrelcss/engine/atom"
)

func TestInternStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kestrel.atom")
	defer teardown()
	//
	table := atom.NewTable()

	id1, err := table.InternString("container")
	assert.NoError(t, err)
	id2, err := table.InternString("container")
	assert.NoError(t, err)
	assert.Equal(t, id1, id2, "interning the same string twice must return the same id")

	other, err := table.InternString("item")
	assert.NoError(t, err)
	assert.NotEqual(t, id1, other, "distinct strings must map to distinct ids")
}

func TestInternEmptyIsNull(t *testing.T) {
	table := atom.NewTable()
	id, err := table.InternString("")
	assert.NoError(t, err)
	assert.Equal(t, atom.Null, id)
}

func TestInternTooLong(t *testing.T) {
	table := atom.NewTable()
	huge := bytes.Repeat([]byte("x"), 65536)
	_, err := table.Intern(huge)
	assert.ErrorIs(t, err, atom.ErrStringTooLong)
}

func TestStringOfRoundTrip(t *testing.T) {
	table := atom.NewTable()
	id, _ := table.InternString("container")
	m := table.StringOf(id)
	got := m.WithDefault(nil)
	assert.Equal(t, "container", string(got))
}

func TestStringOfNullAndOutOfRange(t *testing.T) {
	table := atom.NewTable()
	assert.Nil(t, table.StringOf(atom.Null).WithDefault(nil))
	assert.Nil(t, table.StringOf(atom.AtomId(9999)).WithDefault(nil))
}

func TestHashOfMatchesFNV(t *testing.T) {
	table := atom.NewTable()
	id, _ := table.InternString("container")
	assert.Equal(t, atom.HashString("container"), table.HashOf(id))
	assert.Equal(t, uint32(0), table.HashOf(atom.Null))
}

func TestRehashPreservesIds(t *testing.T) {
	table := atom.NewTable()
	ids := make([]atom.AtomId, 0, 500)
	for i := 0; i < 500; i++ {
		id, err := table.InternString(randomish(i))
		assert.NoError(t, err)
		ids = append(ids, id)
	}
	for i := 0; i < 500; i++ {
		id, err := table.InternString(randomish(i))
		assert.NoError(t, err)
		assert.Equal(t, ids[i], id, "id for entry %d must survive rehashing", i)
	}
}

func randomish(i int) string {
	return "atom-" + string(rune('a'+i%26)) + string(rune('A'+(i/26)%26))
}
