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

import "errors"

var (
	// ErrNotFound indicates that no match set or report is stored under the key.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates a report with the same run ID is already stored.
	ErrDuplicateKey = errors.New("run already stored")

	// ErrStorageClosed indicates that the backend was closed before the call.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidQuery indicates a request the store cannot key, such as a
	// report without a run ID.
	ErrInvalidQuery = errors.New("invalid storage request")

	// ErrSerializationFailed indicates a match set or report could not be
	// encoded or decoded.
	ErrSerializationFailed = errors.New("serialization failed")
)
