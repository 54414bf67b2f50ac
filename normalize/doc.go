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


// Package normalize turns raw text into a symbol stream.
//
// Normalization decomposes the text (NFD), drops every nonspacing mark such as
// Hebrew niqqud, cantillation and Latin accents, recomposes it (NFC) and keeps
// only the symbols of the configured alphabet. The same input always yields
// the same stream.
package normalize
