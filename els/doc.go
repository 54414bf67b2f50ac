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


// Package els finds equidistant letter sequences in a symbol stream.
//
// A term T of length L occurs at (start n, skip d) when stream[n+k*d] == T[k]
// for every k in [0, L). Skips may be negative, which reads the stream backward.
//
// # Scanning
//
// Each skip value is scanned independently. The legal start range for a skip
// is computed up front, so no index outside the stream is ever read:
//
//	d > 0: n in [0, N-(L-1)*d)
//	d < 0: n in [(L-1)*|d|, N)
//
// The comparison at each start stops at the first mismatching symbol and no
// candidate subsequence is ever built.
//
// # Ordering
//
// Skips are enumerated in ascending order. Within one skip, matches are
// emitted in strictly increasing start order. The same stream, term and window
// always produce the same sequence.
//
// # Parallelism
//
// Scanner spreads chunks of skip values over an ants worker pool and joins
// the per-chunk results in skip order, so its output equals the sequential
// Search output.
package els
