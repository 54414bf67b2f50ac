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


// Package elscan searches symbol streams for equidistant letter sequences and
// reports where the sequences of different terms start close together.
//
// The Workbench ties the pieces together: it normalizes nothing itself, but
// runs scan plans over a stream on a worker pool, caches single-window search
// results in an embedded store, groups nearby matches into clusters, and keeps
// every run report for later listing.
//
//	wb, err := elscan.NewWorkbench("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer wb.Close()
//
//	p := plan.NewPlan(plan.WithTerm("torah", "תורה"), plan.WithSkipRange(1, 50))
//	report, err := wb.Run(ctx, stream, p, nil)
package elscan
