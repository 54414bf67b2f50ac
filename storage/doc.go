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


// Package storage provides the persistence abstraction for elscan.
//
// Search is a pure function of (stream, term, window), so its results can be
// cached indefinitely under a key built from the stream fingerprint, the term
// ID and the window. Scan runs are stored as reports keyed by run ID with a
// time index for listing the most recent runs.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the repository interfaces
// defined here:
//
//	matches, err := badger.NewMatchRepository(backend) // storage.MatchRepository
//
// Unexported helpers inside a backend package may use concrete types.
//
// # Architecture
//
//   - MatchRepository: cached match sets
//   - ReportRepository: scan run reports
//
// # Usage
//
// Use in tests with in-memory storage:
//
//	matches, reports, backend, err := badger.NewMemoryRepositories()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be safe for concurrent use.
package storage
