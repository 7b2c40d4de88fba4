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

// Convention selects which startup image InjectFirmwareDefaults writes.  An
// assembled program loaded without the machine's startup routine having run
// observes the same system variables it would after a normal boot.  Which
// convention applies for a given build is configuration decided outside this
// package.
type Convention int

const (
	// StandardBoot is the system-variable table left by the standard firmware
	// boot sequence.
	StandardBoot Convention = iota
	// BASin48Boot matches the startup state established by the BASin 48K
	// development environment: its own variable table plus the machine-stack
	// image it leaves directly below 0x6000.
	BASin48Boot
)

const (
	// sysVarsAddr is where every convention's variable table lives.
	sysVarsAddr = 0x5C00
	// basinStackTop is the first address above the BASin machine-stack image.
	basinStackTop = 0x6000
)

func injectFirmwareDefaults(m AddressSpace, convention Convention) {
	switch convention {
	case StandardBoot:
		m.CopyInto(sysVarsAddr, sysVars)
	case BASin48Boot:
		m.CopyInto(sysVarsAddr, basin48Vars)
		m.CopyInto(basinStackTop-uint16(len(basin48Stack)), basin48Stack)
	default:
		panic("unknown firmware convention")
	}
}

// The tables below are bit-exact snapshots of a live machine's state and are
// load-bearing for downstream emulators and tools.  Do not edit.

// sysVars is the standard boot system-variable table, written at 0x5C00.
var sysVars = []uint8{
	0x0d, 0x03, 0x20, 0x0d, 0xff, 0x00, 0x1e, 0xf7,
	0x0d, 0x23, 0x02, 0x00, 0x00, 0x00, 0x16, 0x07,
	0x01, 0x00, 0x06, 0x00, 0x0b, 0x00, 0x01, 0x00,
	0x01, 0x00, 0x06, 0x00, 0x3e, 0x3f, 0x01, 0xfd,
	0xdf, 0x1e, 0x7f, 0x57, 0xe6, 0x07, 0x6f, 0xaa,
	0x0f, 0x0f, 0x0f, 0xcb, 0xe5, 0xc3, 0x99, 0x38,
	0x21, 0x00, 0xc0, 0xe5, 0x18, 0xe6, 0x00, 0x3c,
	0x40, 0x00, 0xff, 0xcc, 0x01, 0xfc, 0x5f, 0x00,
	0x00, 0x00, 0xfe, 0xff, 0xff, 0x01, 0x00, 0x02,
	0x38, 0x00, 0x00, 0xd8, 0x5d, 0x00, 0x00, 0x26,
	0x5d, 0x26, 0x5d, 0x3b, 0x5d, 0xd8, 0x5d, 0x3a,
	0x5d, 0xd9, 0x5d, 0xd9, 0x5d, 0xd7, 0x5d, 0x00,
	0x00, 0xdb, 0x5d, 0xdb, 0x5d, 0xdb, 0x5d, 0x2d,
	0x92, 0x5c, 0x10, 0x02, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x4a, 0x17, 0x00, 0x00,
	0xbb, 0x00, 0x00, 0x58, 0xff, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x21, 0x17, 0x00, 0x40, 0xe0, 0x50,
	0x21, 0x18, 0x21, 0x17, 0x01, 0x38, 0x00, 0x38,
	0x00, 0x00, 0xaf, 0xd3, 0xf7, 0xdb, 0xf7, 0xfe,
	0x1e, 0x28, 0x03, 0xfe, 0x1f, 0xc0, 0xcf, 0x31,
	0x3e, 0x01, 0x32, 0xef, 0x5c, 0xc9, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xff, 0x5f, 0xff, 0xff, 0xf4, 0x09,
	0xa8, 0x10, 0x4b, 0xf4, 0x09, 0xc4, 0x15, 0x53,
	0x81, 0x0f, 0xc9, 0x15, 0x52, 0x34, 0x5b, 0x2f,
	0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x22,
	0x31, 0x35, 0x36, 0x31, 0x36, 0x22, 0x03, 0xdb,
	0x5c, 0x3d, 0x5d, 0xa2, 0x00, 0x62, 0x6f, 0x6f,
	0x74, 0x20, 0x20, 0x20, 0x20, 0x42, 0x9d, 0x00,
	0x9d, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x08, 0x00, 0x00,
	0x00, 0x00, 0x08, 0xff, 0xff, 0xff, 0x80, 0x00,
	0x00, 0xff, 0xfa, 0x5c, 0xfa, 0x5c, 0x09, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0x00, 0x00, 0x00,
	0x00, 0x3c, 0x5d, 0xfc, 0x5f, 0xff, 0x3c, 0xaa,
	0x00, 0x00, 0x01, 0x02, 0xf8, 0x5f, 0x00, 0x00,
	0xf7, 0x22, 0x62,
}

// basin48Vars is the BASin 48K system-variable table, written at 0x5C00.
var basin48Vars = []uint8{
	0xff, 0x00, 0x00, 0x00, 0xff, 0x00, 0x00, 0x00,
	0x00, 0x23, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x06, 0x00, 0x0b, 0x00, 0x01, 0x00,
	0x01, 0x00, 0x06, 0x00, 0x10, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3c,
	0x40, 0x00, 0xff, 0xc0, 0x01, 0x54, 0xff, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xfe, 0xff, 0x01,
	0x38, 0x00, 0x00, 0xcb, 0x5c, 0x00, 0x00, 0xb6,
	0x5c, 0xb6, 0x5c, 0xcb, 0x5c, 0xdb, 0x5c, 0xca,
	0x5c, 0xcc, 0x5c, 0xd4, 0x5c, 0xda, 0x5c, 0xcf,
	0x00, 0xdc, 0x5c, 0xdc, 0x5c, 0xdc, 0x5c, 0x2d,
	0x92, 0x5c, 0x10, 0x02, 0x00, 0x00, 0xfe, 0xff,
	0x01, 0x00, 0x00, 0x00, 0xb6, 0x1a, 0x00, 0x00,
	0xe5, 0x00, 0x00, 0x58, 0xff, 0x00, 0x00, 0x21,
	0x00, 0x5b, 0x21, 0x17, 0x00, 0x40, 0xe0, 0x50,
	0x21, 0x18, 0x21, 0x17, 0x01, 0x38, 0x00, 0x38,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x57, 0xff, 0xff, 0xff, 0xf4, 0x09,
	0xa8, 0x10, 0x4b, 0xf4, 0x09, 0xc4, 0x15, 0x53,
	0x81, 0x0f, 0xc4, 0x15, 0x52, 0xf4, 0x09, 0xc4,
	0x15, 0x50, 0x80, 0x80, 0xf9, 0xc0, 0x33, 0x32,
	0x37, 0x36, 0x38, 0x00, 0x0e, 0x00, 0x00, 0x00,
	0x80, 0x00, 0x0d, 0x80, 0x00, 0x00, 0x00, 0x80,
	0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00,
}

// basin48Stack is the BASin 48K machine-stack image, written so that it
// ends at 0x6000.
var basin48Stack = []uint8{
	0xb1, 0x33, 0xe0, 0x5c, 0xc2, 0x02, 0x4d, 0x00,
	0xdc, 0x5c, 0x00, 0x80, 0x2b, 0x2d, 0x54, 0x00,
	0x2b, 0x2d, 0x2b, 0x2d, 0x65, 0x33, 0x00, 0x00,
	0xed, 0x10, 0x0d, 0x00, 0x09, 0x00, 0x85, 0x1c,
	0x10, 0x1c, 0x52, 0x1b, 0x76, 0x1b, 0x03, 0x13,
	0x00, 0x3e, 0x00, 0x3c, 0x42, 0x42, 0x7e, 0x42,
	0x42, 0x00, 0x00, 0x7c, 0x42, 0x7c, 0x42, 0x42,
	0x7c, 0x00, 0x00, 0x3c, 0x42, 0x40, 0x40, 0x42,
	0x3c, 0x00, 0x00, 0x78, 0x44, 0x42, 0x42, 0x44,
	0x78, 0x00, 0x00, 0x7e, 0x40, 0x7c, 0x40, 0x40,
	0x7e, 0x00, 0x00, 0x7e, 0x40, 0x7c, 0x40, 0x40,
	0x40, 0x00, 0x00, 0x3c, 0x42, 0x40, 0x4e, 0x42,
	0x3c, 0x00, 0x00, 0x42, 0x42, 0x7e, 0x42, 0x42,
	0x42, 0x00, 0x00, 0x3e, 0x08, 0x08, 0x08, 0x08,
	0x3e, 0x00, 0x00, 0x02, 0x02, 0x02, 0x42, 0x42,
	0x3c, 0x00, 0x00, 0x44, 0x48, 0x70, 0x48, 0x44,
	0x42, 0x00, 0x00, 0x40, 0x40, 0x40, 0x40, 0x40,
	0x7e, 0x00, 0x00, 0x42, 0x66, 0x5a, 0x42, 0x42,
	0x42, 0x00, 0x00, 0x42, 0x62, 0x52, 0x4a, 0x46,
	0x42, 0x00, 0x00, 0x3c, 0x42, 0x42, 0x42, 0x42,
	0x3c, 0x00, 0x00, 0x7c, 0x42, 0x42, 0x7c, 0x40,
	0x40, 0x00, 0x00, 0x3c, 0x42, 0x42, 0x52, 0x4a,
	0x3c, 0x00, 0x00, 0x7c, 0x42, 0x42, 0x7c, 0x44,
	0x42, 0x00, 0x00, 0x3c, 0x40, 0x3c, 0x02, 0x42,
	0x3c, 0x00, 0x00, 0xfe, 0x10, 0x10, 0x10, 0x10,
	0x10, 0x00, 0x00, 0x42, 0x42, 0x42, 0x42, 0x42,
	0x3c, 0x00, 0x00,
}
