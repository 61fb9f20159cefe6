package postgres

import (
	"testing"

	"vetdesk/internal/domain/owners"
	"vetdesk/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Scan(t *testing.T) {
	var l stringList

	require.NoError(t, l.Scan([]byte(`["555-1002","555-1003"]`)))
	assert.Equal(t, stringList{"555-1002", "555-1003"}, l)

	require.NoError(t, l.Scan(`[]`))
	assert.Equal(t, stringList{}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, stringList{}, l)

	require.NoError(t, l.Scan("null"))
	assert.Equal(t, stringList{}, l)

	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan(`{"a":1}`))
}

func TestStringList_Value(t *testing.T) {
	v, err := stringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = stringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestRowsFromDomain(t *testing.T) {
	p := petRowFrom(pets.Pet{ID: 7, Name: "Toby", Type: pets.SpeciesDog})
	assert.False(t, p.OwnerID.Valid, "pet sin dueño => owner_id NULL")
	assert.False(t, p.BirthDate.Valid)
	assert.True(t, p.toDomain().BirthDate == nil)
	assert.Equal(t, []string{}, p.toDomain().Allergies)

	o := ownerRowFrom(owners.Owner{ID: 2, FirstName: "John", Phones: []string{"555-1002"}})
	v, err := o.Phones.Value()
	require.NoError(t, err)
	assert.Equal(t, `["555-1002"]`, v)
	assert.Equal(t, "John", o.toDomain().FirstName)
}
