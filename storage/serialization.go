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


package storage

import (
	"fmt"

	"github.com/poiesic/elscan/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalMatchSet serializes a MatchSet to bytes.
func MarshalMatchSet(set *core.MatchSet) []byte {
	buf := make([]byte, core.MatchSetMUS.Size(*set))
	core.MatchSetMUS.Marshal(*set, buf)
	return buf
}

// UnmarshalMatchSet deserializes a MatchSet from bytes.
func UnmarshalMatchSet(data []byte) (*core.MatchSet, error) {
	set, _, err := core.MatchSetMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: match set: %w", ErrSerializationFailed, err)
	}
	return &set, nil
}

// MarshalReport serializes a Report to bytes.
func MarshalReport(report *core.Report) []byte {
	buf := make([]byte, core.ReportMUS.Size(*report))
	core.ReportMUS.Marshal(*report, buf)
	return buf
}

// UnmarshalReport deserializes a Report from bytes.
func UnmarshalReport(data []byte) (*core.Report, error) {
	report, _, err := core.ReportMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: report: %w", ErrSerializationFailed, err)
	}
	// Timestamps decode in the local zone; reports are kept in UTC.
	report.CreatedAt = report.CreatedAt.UTC()
	return &report, nil
}
