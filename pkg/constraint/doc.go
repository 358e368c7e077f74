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

// Package constraint parses and evaluates operator expressions over version
// cores, such as ">= 1.27" in a manifest's minimum toolchain requirement.
//
// Comparison operators evaluate up to the arity both operands share, so a
// two-component bound acts as a wildcard for the patch component. Semver
// pre-release precedence is not part of this package; operands are version
// cores only.
package constraint
