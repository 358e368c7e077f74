// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package ranges maps spans of version cores to values.
//
// A Range is a begin-inclusive, end-exclusive span over two-component base
// versions. A RangeMap holds an ordered set of non-overlapping ranges and
// resolves a version to the value of the range containing it, for call sites
// like "which toolchain channel serves versions 1.20 up to 1.27".
package ranges
