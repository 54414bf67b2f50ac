package cipher

import (
	"testing"

	"github.com/poiesic/elscan/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtbash(t *testing.T) {
	assert.Equal(t, "תשר", Atbash.ApplyString("אבג"))
	assert.Equal(t, "אבג", Atbash.ApplyString(Atbash.ApplyString("אבג")))
}

func TestAlbam(t *testing.T) {
	assert.Equal(t, "ל", Albam.ApplyString("א"))
	assert.Equal(t, "א", Albam.ApplyString("ל"))
	// Albam is its own inverse because it shifts by half the alphabet.
	assert.Equal(t, "שלום", Albam.ApplyString(Albam.ApplyString("שלום")))
}

func TestPassThrough(t *testing.T) {
	assert.Equal(t, "ם x", Atbash.ApplyString("ם x"))
}

func TestCipherTerm(t *testing.T) {
	term := Atbash.Term(core.NewTerm("ABG", "אבג"))
	assert.Equal(t, "ABG/atbash", term.Name)
	assert.Equal(t, "תשר", term.Text())
}

func TestByName(t *testing.T) {
	c, err := ByName("albam")
	require.NoError(t, err)
	assert.Equal(t, "albam", c.Name())

	_, err = ByName("rot13")
	assert.Error(t, err)
}
