package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptor(name string, params ...Param) Descriptor {
	return Descriptor{
		Name:        name,
		Description: "test operation " + name,
		Params:      params,
		Handler: func(ctx context.Context, args Args) (any, error) {
			return nil, nil
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, err := New([]Descriptor{testDescriptor("a"), testDescriptor("b")})
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := New([]Descriptor{testDescriptor("a"), testDescriptor("a")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate operation: a")
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := New([]Descriptor{testDescriptor("")})
		require.Error(t, err)
	})

	t.Run("NilHandler", func(t *testing.T) {
		_, err := New([]Descriptor{{Name: "a"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no handler")
	})
}

func TestListOrder(t *testing.T) {
	r, err := New([]Descriptor{testDescriptor("c"), testDescriptor("a"), testDescriptor("b")})
	require.NoError(t, err)

	// Discovery responses depend on a stable order, so List must preserve
	// registration order on every call.
	for i := 0; i < 3; i++ {
		var names []string
		for _, d := range r.List() {
			names = append(names, d.Name)
		}
		assert.Equal(t, []string{"c", "a", "b"}, names)
		assert.Equal(t, []string{"c", "a", "b"}, r.Names())
	}
}

func TestResolve(t *testing.T) {
	r, err := New([]Descriptor{testDescriptor("known")})
	require.NoError(t, err)

	d, ok := r.Resolve("known")
	require.True(t, ok)
	assert.Equal(t, "known", d.Name)

	_, ok = r.Resolve("unknown")
	assert.False(t, ok)
}

func TestDescriptorRequired(t *testing.T) {
	d := testDescriptor("op",
		Param{Name: "owner", Required: true},
		Param{Name: "page"},
		Param{Name: "repo", Required: true},
	)
	assert.Equal(t, []string{"owner", "repo"}, d.Required())

	assert.Empty(t, testDescriptor("bare").Required())
}
