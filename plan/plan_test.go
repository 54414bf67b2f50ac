package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/elscan/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlan(t *testing.T) {
	p := DefaultPlan()
	assert.Equal(t, 1, p.MinSkip)
	assert.Equal(t, 200, p.MaxSkip)
	assert.True(t, p.Bidirectional)
	assert.Equal(t, 20, p.Threshold)
	assert.Equal(t, "hebrew", p.Alphabet)
	assert.Equal(t, []core.SkipWindow{{Min: 1, Max: 200}, {Min: -200, Max: -1}}, p.Windows())
}

func TestNewPlan(t *testing.T) {
	p := NewPlan(
		WithTerm("a", "אב"),
		WithSkipRange(2, 9),
		WithBidirectional(false),
		WithThreshold(5),
		WithMaxMatchesPerTerm(100),
		WithWorkers(3),
		WithAlphabet("hebrew-folded"),
		WithVariants("albam"),
	)
	require.NoError(t, p.Validate())
	assert.Equal(t, []TermSpec{{Name: "a", Text: "אב"}}, p.Terms)
	assert.Equal(t, []core.SkipWindow{{Min: 2, Max: 9}}, p.Windows())
	assert.Equal(t, 5, p.Threshold)
	assert.Equal(t, 100, p.MaxMatchesPerTerm)
	assert.Equal(t, 3, p.Workers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"valid", []Option{WithTerm("a", "אב")}, nil},
		{"no terms", nil, ErrNoTerms},
		{"zero min skip", []Option{WithTerm("a", "אב"), WithSkipRange(0, 5)}, core.ErrInvalidSkip},
		{"inverted range", []Option{WithTerm("a", "אב"), WithSkipRange(9, 2)}, ErrInvalidPlan},
		{"zero threshold", []Option{WithTerm("a", "אב"), WithThreshold(0)}, core.ErrInvalidThreshold},
		{"unknown alphabet", []Option{WithTerm("a", "אב"), WithAlphabet("greek")}, ErrInvalidPlan},
		{"unknown variant", []Option{WithTerm("a", "אב"), WithVariants("rot13")}, ErrInvalidPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPlan(tt.opts...).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalize(t *testing.T) {
	p := NewPlan(
		WithTerm("", "  אב "),
		WithSkipRange(-1, -50),
		WithAlphabet(" Latin "),
		WithVariants(" AtBash"),
		WithWorkers(-4),
	)
	p.Normalize()

	assert.Equal(t, TermSpec{Name: "אב", Text: "אב"}, p.Terms[0])
	assert.Equal(t, 1, p.MinSkip)
	assert.Equal(t, 50, p.MaxSkip)
	assert.Equal(t, "latin", p.Alphabet)
	assert.Equal(t, []string{"atbash"}, p.Variants)
	assert.Equal(t, 0, p.Workers)
}

func TestLoad(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "shalom.yaml"))
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, []TermSpec{{Name: "shalom", Text: "שָׁלוֹם"}, {Name: "תורה", Text: "תורה"}}, p.Terms)
	assert.Equal(t, 50, p.MaxSkip)
	assert.Equal(t, 10, p.Threshold)
	// Absent fields keep their defaults.
	assert.True(t, p.Bidirectional)
	assert.Equal(t, "hebrew", p.Alphabet)

	terms, err := p.BuildTerms()
	require.NoError(t, err)
	require.Len(t, terms, 4)
	assert.Equal(t, "shalom", terms[0].Name)
	assert.Equal(t, "שלום", terms[0].Text())
	assert.Equal(t, "shalom/atbash", terms[1].Name)
	assert.Equal(t, "תורה", terms[2].Name)
	assert.Equal(t, "תורה/atbash", terms[3].Name)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresold: 5\n"), 0644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPlan(), p)
}

func TestBuildTerms(t *testing.T) {
	t.Run("term normalizing to nothing", func(t *testing.T) {
		_, err := NewPlan(WithTerm("ascii", "abc")).BuildTerms()
		assert.ErrorIs(t, err, core.ErrInvalidTerm)
	})

	t.Run("duplicate labels", func(t *testing.T) {
		_, err := NewPlan(WithTerm("a", "אב"), WithTerm("a", "גד")).BuildTerms()
		assert.ErrorIs(t, err, ErrInvalidPlan)
	})

	t.Run("latin alphabet", func(t *testing.T) {
		terms, err := NewPlan(WithTerm("w", "Word"), WithAlphabet("latin")).BuildTerms()
		require.NoError(t, err)
		assert.Equal(t, "WORD", terms[0].Text())
	})
}
