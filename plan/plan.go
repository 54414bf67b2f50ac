// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package plan describes a scan run: which terms to search, over which skip
// windows, and how close matches must be to be reported as a cluster.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/poiesic/elscan/cipher"
	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/normalize"
	"gopkg.in/yaml.v3"
)

// TermSpec is a term as written in a plan file.
type TermSpec struct {
	// Name labels the term in reports. Defaults to the text.
	Name string `yaml:"name"`

	// Text is the raw term text; it is normalized with the plan alphabet.
	Text string `yaml:"text"`
}

// Plan holds the parameters of a scan run.
type Plan struct {
	Terms []TermSpec `yaml:"terms"`

	// MinSkip and MaxSkip bound the skip magnitudes searched.
	// Default: 1 to 200
	MinSkip int `yaml:"min_skip"`
	MaxSkip int `yaml:"max_skip"`

	// Bidirectional adds the mirrored negative window.
	// Default: true
	Bidirectional bool `yaml:"bidirectional"`

	// Threshold is the exclusive proximity threshold between match starts.
	// Default: 20
	Threshold int `yaml:"threshold"`

	// MaxMatchesPerTerm caps the matches kept per term. Zero means unlimited.
	MaxMatchesPerTerm int `yaml:"max_matches_per_term"`

	// Workers is the scanner pool size. Zero means one per CPU.
	Workers int `yaml:"workers"`

	// Alphabet names the normalization alphabet: hebrew, hebrew-folded or latin.
	// Default: hebrew
	Alphabet string `yaml:"alphabet"`

	// Variants lists ciphers whose output is searched as additional terms.
	Variants []string `yaml:"variants"`
}

// Option is a functional option for configuring a Plan.
type Option func(*Plan)

// WithTerm appends a term.
func WithTerm(name, text string) Option {
	return func(p *Plan) {
		p.Terms = append(p.Terms, TermSpec{Name: name, Text: text})
	}
}

// WithSkipRange sets the skip magnitudes searched.
func WithSkipRange(minSkip, maxSkip int) Option {
	return func(p *Plan) {
		p.MinSkip = minSkip
		p.MaxSkip = maxSkip
	}
}

// WithBidirectional enables or disables the negative window.
func WithBidirectional(enabled bool) Option {
	return func(p *Plan) {
		p.Bidirectional = enabled
	}
}

// WithThreshold sets the proximity threshold.
func WithThreshold(threshold int) Option {
	return func(p *Plan) {
		p.Threshold = threshold
	}
}

// WithMaxMatchesPerTerm caps the matches kept per term.
func WithMaxMatchesPerTerm(limit int) Option {
	return func(p *Plan) {
		p.MaxMatchesPerTerm = limit
	}
}

// WithWorkers sets the scanner pool size.
func WithWorkers(workers int) Option {
	return func(p *Plan) {
		p.Workers = workers
	}
}

// WithAlphabet sets the normalization alphabet.
func WithAlphabet(name string) Option {
	return func(p *Plan) {
		p.Alphabet = name
	}
}

// WithVariants sets the cipher variants.
func WithVariants(names ...string) Option {
	return func(p *Plan) {
		p.Variants = names
	}
}

// DefaultPlan returns a Plan with the defaults of the interactive workbench:
// skips 1 to 200 in both directions and a proximity threshold of 20.
func DefaultPlan() *Plan {
	return &Plan{
		MinSkip:       1,
		MaxSkip:       200,
		Bidirectional: true,
		Threshold:     20,
		Alphabet:      "hebrew",
	}
}

// NewPlan creates a Plan with the default values and applies the provided options.
//
// Example:
//
//	p := NewPlan(
//	    WithTerm("torah", "תורה"),
//	    WithSkipRange(1, 50),
//	)
func NewPlan(opts ...Option) *Plan {
	p := DefaultPlan()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads a YAML plan file. Fields absent from the file keep their defaults.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML plan. Unknown fields are rejected.
func Parse(data []byte) (*Plan, error) {
	p := DefaultPlan()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return p, nil
}

// Normalize puts the plan in canonical form: trimmed names, default labels,
// lower-case alphabet and variant names, and a non-negative skip range.
func (p *Plan) Normalize() {
	for i := range p.Terms {
		p.Terms[i].Text = strings.TrimSpace(p.Terms[i].Text)
		p.Terms[i].Name = strings.TrimSpace(p.Terms[i].Name)
		if p.Terms[i].Name == "" {
			p.Terms[i].Name = p.Terms[i].Text
		}
	}
	p.Alphabet = strings.ToLower(strings.TrimSpace(p.Alphabet))
	if p.Alphabet == "" {
		p.Alphabet = "hebrew"
	}
	for i, v := range p.Variants {
		p.Variants[i] = strings.ToLower(strings.TrimSpace(v))
	}
	// Magnitudes written as negatives are accepted.
	if p.MinSkip < 0 {
		p.MinSkip = -p.MinSkip
	}
	if p.MaxSkip < 0 {
		p.MaxSkip = -p.MaxSkip
	}
	if p.Workers < 0 {
		p.Workers = 0
	}
	if p.MaxMatchesPerTerm < 0 {
		p.MaxMatchesPerTerm = 0
	}
}

// Validate checks that the plan is complete and consistent.
// It automatically normalizes the plan before validation.
func (p *Plan) Validate() error {
	p.Normalize()

	if len(p.Terms) == 0 {
		return ErrNoTerms
	}
	for _, w := range p.Windows() {
		if err := core.ValidateSkipWindow(w); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
	}
	if p.MinSkip > p.MaxSkip {
		return fmt.Errorf("%w: min_skip %d exceeds max_skip %d", ErrInvalidPlan, p.MinSkip, p.MaxSkip)
	}
	if err := core.ValidateThreshold(p.Threshold); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if _, err := normalize.ByName(p.Alphabet); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	for _, v := range p.Variants {
		if _, err := cipher.ByName(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
	}
	return nil
}

// Windows returns the skip windows the plan searches, forward first.
func (p *Plan) Windows() []core.SkipWindow {
	if p.Bidirectional {
		return core.Bidirectional(p.MinSkip, p.MaxSkip)
	}
	return []core.SkipWindow{core.Forward(p.MinSkip, p.MaxSkip)}
}

// Normalizer returns the normalizer for the plan alphabet.
func (p *Plan) Normalizer() (*normalize.Normalizer, error) {
	alphabet, err := normalize.ByName(p.Alphabet)
	if err != nil {
		return nil, err
	}
	return normalize.New(alphabet), nil
}

// BuildTerms normalizes the plan terms and appends one term per cipher variant.
// Every resulting term must be non-empty and uniquely labelled.
func (p *Plan) BuildTerms() ([]core.Term, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n, err := p.Normalizer()
	if err != nil {
		return nil, err
	}

	terms := make([]core.Term, 0, len(p.Terms)*(1+len(p.Variants)))
	for _, spec := range p.Terms {
		term := n.Term(spec.Name, spec.Text)
		if err := core.ValidateTerm(term); err != nil {
			return nil, fmt.Errorf("%w: term %q: %w", ErrInvalidPlan, spec.Name, err)
		}
		terms = append(terms, term)
		for _, name := range p.Variants {
			c, _ := cipher.ByName(name)
			terms = append(terms, c.Term(term))
		}
	}

	labels := make([]string, 0, len(terms))
	for _, t := range terms {
		if slices.Contains(labels, t.Name) {
			return nil, fmt.Errorf("%w: duplicate term %q", ErrInvalidPlan, t.Name)
		}
		labels = append(labels, t.Name)
	}
	return terms, nil
}
