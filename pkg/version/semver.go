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

package version

import (
	semver "github.com/Masterminds/semver/v3"
)

// Interop with the semver ecosystem. Version cores are a subset of semver,
// so the conversion out is always possible; a base version is promoted
// lossily with patch 0.

// Semver converts this full version to a semver version without pre-release
// or build metadata.
func (v FullVersion) Semver() *semver.Version {
	return semver.New(v.Major, v.Minor, v.Patch, "", "")
}

// Semver converts this base version to a semver version. The conversion is
// lossy in the same way as ToFull: the patch component is initialized to 0.
func (v BaseVersion) Semver() *semver.Version {
	return v.ToFull().Semver()
}

// Semver converts the contained version to a semver version, promoting a
// base version with patch 0.
func (v Version) Semver() *semver.Version {
	if full, ok := v.Full(); ok {
		return full.Semver()
	}
	return semver.New(v.major, v.minor, 0, "", "")
}

// FromSemver extracts the version core of a semver version, dropping any
// pre-release or build metadata.
func FromSemver(sv *semver.Version) FullVersion {
	return FullVersion{Major: sv.Major(), Minor: sv.Minor(), Patch: sv.Patch()}
}
