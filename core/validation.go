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


package core

import "fmt"

// ValidateSkipWindow validates a SkipWindow according to domain rules.
//
// Validation rules:
//   - Neither bound may be zero
//   - Both bounds must share a sign, so the window never spans zero
//
// NOT validated:
//   - Min > Max for a positive window (an empty window, which yields no matches)
func ValidateSkipWindow(w SkipWindow) error {
	if w.Min == 0 || w.Max == 0 {
		return fmt.Errorf("%w: bounds [%d, %d] include zero", ErrInvalidSkip, w.Min, w.Max)
	}
	if (w.Min > 0) != (w.Max > 0) {
		return fmt.Errorf("%w: bounds [%d, %d] span zero", ErrInvalidSkip, w.Min, w.Max)
	}
	return nil
}

// ValidateThreshold validates a proximity threshold.
func ValidateThreshold(threshold int) error {
	if threshold <= 0 {
		return fmt.Errorf("%w: value %d", ErrInvalidThreshold, threshold)
	}
	return nil
}

// ValidateTerm validates a Term supplied by configuration.
//
// Validation rules:
//   - Name must not be empty
//   - Symbols must not be empty
//
// The search engine itself accepts empty terms and returns no matches;
// this check is for callers that build terms from user input.
func ValidateTerm(term Term) error {
	if term.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTerm, ErrEmptyTermName)
	}
	if len(term.Symbols) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTerm, ErrEmptyTermSymbols)
	}
	return nil
}
