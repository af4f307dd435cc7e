package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionSet(t *testing.T) {
	set := NewPermissionSet(PermOrder, PermAttend, PermAttend)

	assert.True(t, set.Has(PermAttend))
	assert.False(t, set.Has(PermAdminister))
	assert.Equal(t, []string{"attend", "order"}, set.Sorted())

	v, err := set.Value()
	require.NoError(t, err)
	assert.Equal(t, "attend,order", v)

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `["attend","order"]`, string(raw))
}

func TestPermissionSet_Scan(t *testing.T) {
	tests := []struct {
		name     string
		src      interface{}
		expected []string
		wantErr  bool
	}{
		{"string", "administer,attend", []string{"administer", "attend"}, false},
		{"bytes with blanks", []byte("comment, ,order"), []string{"comment", "order"}, false},
		{"null", nil, []string{}, false},
		{"unsupported", 42, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var set PermissionSet
			err := set.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, set.Sorted())
		})
	}
}

func TestTaxonomyKind_Valid(t *testing.T) {
	assert.True(t, KindCategory.Valid())
	assert.True(t, KindCollection.Valid())
	assert.False(t, TaxonomyKind("tags").Valid())
}

func TestPhoto_Apply(t *testing.T) {
	category := uint(4)
	photo := &Photo{Active: false}

	photo.Apply(DefaultPhotoFlags(), TaxonomyRefs{CategoryID: &category})

	assert.True(t, photo.Active)
	assert.False(t, photo.Slideshow)
	assert.Equal(t, &category, photo.CategoryID)
	assert.Nil(t, photo.SubcategoryID)
}
