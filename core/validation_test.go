package core

import (
	"errors"
	"testing"
)

func TestValidateSkipWindow(t *testing.T) {
	tests := []struct {
		name    string
		window  SkipWindow
		wantErr error
	}{
		{name: "positive window", window: SkipWindow{Min: 1, Max: 50}, wantErr: nil},
		{name: "negative window", window: SkipWindow{Min: -50, Max: -1}, wantErr: nil},
		{name: "negative window by magnitude", window: SkipWindow{Min: -1, Max: -50}, wantErr: nil},
		{name: "single skip", window: SkipWindow{Min: 7, Max: 7}, wantErr: nil},
		{name: "inverted positive window", window: SkipWindow{Min: 10, Max: 2}, wantErr: nil},
		{name: "zero min", window: SkipWindow{Min: 0, Max: 10}, wantErr: ErrInvalidSkip},
		{name: "zero max", window: SkipWindow{Min: -10, Max: 0}, wantErr: ErrInvalidSkip},
		{name: "zero window", window: SkipWindow{}, wantErr: ErrInvalidSkip},
		{name: "spans zero", window: SkipWindow{Min: -3, Max: 3}, wantErr: ErrInvalidSkip},
		{name: "mixed signs inverted", window: SkipWindow{Min: 3, Max: -3}, wantErr: ErrInvalidSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSkipWindow(tt.window)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSkipWindow() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSkipWindow() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		wantErr   error
	}{
		{"positive", 20, nil},
		{"one", 1, nil},
		{"zero", 0, ErrInvalidThreshold},
		{"negative", -5, ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThreshold(tt.threshold)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateThreshold() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateThreshold() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTerm(t *testing.T) {
	tests := []struct {
		name    string
		term    Term
		wantErr error
	}{
		{"valid term", NewTerm("DNA", "דנא"), nil},
		{"empty name", NewTerm("", "דנא"), ErrEmptyTermName},
		{"empty symbols", NewTerm("DNA", ""), ErrEmptyTermSymbols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTerm(tt.term)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTerm() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTerm() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidTerm) {
				t.Errorf("ValidateTerm() error = %v, want wrapped %v", err, ErrInvalidTerm)
			}
		})
	}
}
