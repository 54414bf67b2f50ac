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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSkip indicates a skip window contains or implies a zero skip.
	ErrInvalidSkip = errors.New("invalid skip window")

	// ErrInvalidThreshold indicates a non-positive proximity threshold.
	ErrInvalidThreshold = errors.New("invalid proximity threshold")

	// ErrInvalidTerm indicates a Term failed validation.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrEmptyTermName indicates the term Name field is empty.
	ErrEmptyTermName = errors.New("term name cannot be empty")

	// ErrEmptyTermSymbols indicates the term has no symbols.
	ErrEmptyTermSymbols = errors.New("term symbols cannot be empty")
)
