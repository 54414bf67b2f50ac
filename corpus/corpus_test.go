package corpus

import (
	"path/filepath"
	"testing"

	"github.com/poiesic/elscan/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadText(t *testing.T) {
	c, err := NewLoader().LoadText(filepath.Join("testdata", "genesis.txt"))
	require.NoError(t, err)
	assert.Equal(t, "בראשיתבראאלהים", c.Stream.Slice(0, c.Stream.Len()))
	assert.Equal(t, []Book{{Path: filepath.Join("testdata", "genesis.txt"), Len: 14}}, c.Books)
}

func TestLoadText_Errors(t *testing.T) {
	_, err := NewLoader().LoadText(filepath.Join("testdata", "missing.txt"))
	assert.Error(t, err)

	// ASCII only normalizes to nothing under the Hebrew alphabet.
	_, err = NewLoader().LoadText(filepath.Join("testdata", "broken.json"))
	assert.ErrorIs(t, err, ErrNoText)
}

func TestLoadBooks(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "alpha.json"),
		filepath.Join("testdata", "missing.json"),
		filepath.Join("testdata", "broken.json"),
		filepath.Join("testdata", "beta.json"),
	}
	c, err := NewLoader().LoadBooks(paths...)
	require.NoError(t, err)

	assert.Equal(t, "אבגדהוזחטי", c.Stream.Slice(0, c.Stream.Len()))
	assert.Equal(t, []Book{
		{Path: paths[0], Offset: 0, Len: 6, Verses: 3},
		{Path: paths[3], Offset: 6, Len: 4, Verses: 2},
	}, c.Books)

	t.Run("locate", func(t *testing.T) {
		b, ok := c.Locate(5)
		require.True(t, ok)
		assert.Equal(t, paths[0], b.Path)

		b, ok = c.Locate(6)
		require.True(t, ok)
		assert.Equal(t, paths[3], b.Path)

		_, ok = c.Locate(10)
		assert.False(t, ok)
	})
}

func TestLoadBooks_NothingLoaded(t *testing.T) {
	_, err := NewLoader().LoadBooks(filepath.Join("testdata", "missing.json"))
	assert.ErrorIs(t, err, ErrNoText)
}

func TestLoadBooks_Latin(t *testing.T) {
	l := NewLoader(WithNormalizer(normalize.New(normalize.Latin())))
	c, err := l.LoadBooks(filepath.Join("testdata", "beta.json"))
	require.NoError(t, err)
	assert.Equal(t, "BXB", c.Stream.Slice(0, c.Stream.Len()))
}

func TestBookPaths(t *testing.T) {
	assert.Equal(t, []string{filepath.Join("data", "genesis.json")}, BookPaths("data", TorahBooks[:1]))
	assert.Len(t, TanakhBooks, 39)
}
