// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mem

import "errors"

// Diagnostic errors returned to the directive-processing layer, which reports
// them against a source location.  Anything not expressible as one of these is
// a contract violation on the caller's part and panics instead.
var (
	// ErrUnknownTopology indicates a topology name outside the fixed catalog.
	ErrUnknownTopology = errors.New("unknown memory topology")
	// ErrInvalidSlot indicates a slot index outside [0,NumSlots).
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrInvalidPage indicates a page index outside the pages available to the
	// selected topology.
	ErrInvalidPage = errors.New("invalid page")
	// ErrUnsupportedOperation indicates a paging operation against the flat
	// (PLAIN) topology.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
