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


package badger

import "github.com/poiesic/elscan/storage"

// NewMemoryRepositories creates in-memory match and report repositories for testing.
// Returns matchRepo, reportRepo, backend, and error.
// Caller must close the backend when done.
func NewMemoryRepositories() (storage.MatchRepository, storage.ReportRepository, *Backend, error) {
	backend, err := OpenBackend("", true, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	matches, reports, err := NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}
	return matches, reports, backend, nil
}

// NewRepositories creates the match and report repositories over one backend.
func NewRepositories(backend *Backend) (storage.MatchRepository, storage.ReportRepository, error) {
	matchRepo, err := NewMatchRepository(backend)
	if err != nil {
		return nil, nil, err
	}
	reportRepo, err := NewReportRepository(backend)
	if err != nil {
		matchRepo.Close()
		return nil, nil, err
	}
	return matchRepo, reportRepo, nil
}
