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

// Package mem models the output image of the assembler as the target machine
// sees it.  The 64KB address space visible to the Z80 is either a single
// contiguous block (the PLAIN topology) or a window onto a larger backing
// store composed of fixed-size pages mapped into slots (the ZX Spectrum 128
// and its bigger siblings).  The assembler writes through CPU addresses
// during code generation and reads raw pages back out at emission time.
package mem

const (
	// PageSize is the fixed size (in bytes) of one page of backing storage in
	// a banked topology.
	PageSize = 0x4000
	// NumSlots is the number of page windows making up the CPU-visible
	// address space in a banked topology.
	NumSlots = 4
	// SpaceSize is the size (in bytes) of the CPU-visible address space.
	SpaceSize = 0x10000
)

// AddressSpace is the contract any memory topology must satisfy: byte and
// word access through CPU addresses, usage tracking for the two-pass
// discipline, paging control and raw page access for emission.  Exactly two
// implementations exist (FlatSpace and BankedSpace); the Registry resolves
// which one is live once per assembly run.
type AddressSpace interface {
	// Name returns the topology name, as found in the topology catalog.
	Name() string
	// ReadByte returns the byte visible at a given CPU address through the
	// current translation.
	ReadByte(addr uint16) uint8
	// WriteByte deposits a byte at the translated offset of a given CPU
	// address.  An ephemeral write mutates storage without marking the offset
	// as committed; it is the speculative path used while a value is still
	// being provisionally evaluated, and is undone by ClearEphemerals unless
	// a committing write to the same offset lands first.
	WriteByte(addr uint16, value uint8, ephemeral bool)
	// WriteWord writes a 16-bit word in little-endian order via two byte
	// writes.  The high byte address wraps around the 64KB boundary, so a
	// word written at 0xFFFF deposits its high byte at 0x0000.
	WriteWord(addr uint16, word uint16, ephemeral bool)
	// UsedAddr reports whether the translated offset of a given CPU address
	// has received a committing write since the last Clear.
	UsedAddr(addr uint16) bool
	// ClearEphemerals zeroes every storage offset which is not committed.
	// Idempotent.
	ClearEphemerals()
	// Clear zeroes all storage and all committed flags.  Paging state (where
	// any exists) is left untouched.
	Clear()
	// CopyInto writes a buffer byte-by-byte starting at a given CPU address,
	// committing each byte.  The destination wraps around the 64KB boundary.
	CopyInto(offset uint16, src []byte)
	// FillRange writes a repeated byte starting at a given CPU address,
	// committing each byte, with the same wraparound rule as CopyInto.
	FillRange(offset uint16, value uint8, length uint16)
	// ReadRange fills dst with bytes read through the current translation,
	// starting at a given CPU address and wrapping around the 64KB boundary.
	ReadRange(dst []byte, addr uint16)
	// ReadRangeInSlot fills dst with bytes read from a given slot window at a
	// given in-page offset, through the current translation, wrapping around
	// the 64KB boundary.
	ReadRangeInSlot(dst []byte, slot int, offset uint16)
	// Bytes returns a read-only view over the whole backing store, in page
	// order and independent of any slot mapping.  Callers must not mutate it.
	Bytes() []byte
	// InjectFirmwareDefaults overwrites the system-variable area with the
	// startup image of a given convention, as a committing write.  Panics on
	// the flat topology, which has no such image.
	InjectFirmwareDefaults(convention Convention)

	// IsPaged indicates whether this topology has pages and slots at all.
	IsPaged() bool
	// PageCount returns the total number of backing pages (zero when flat).
	PageCount() int
	// SlotCount returns the number of slots (zero when flat).
	SlotCount() int
	// DefaultSlot returns the slot conventionally treated as current at
	// reset.
	DefaultSlot() int
	// PageInSlot returns the page currently mapped into a given slot.
	PageInSlot(slot int) int
	// PageForAddress returns the page currently mapped at a given CPU
	// address.
	PageForAddress(addr uint16) int
	// SetPage maps a page into a slot, taking effect for the very next byte
	// access.  Fails with ErrInvalidSlot, ErrInvalidPage or (on the flat
	// topology) ErrUnsupportedOperation, leaving the mapping untouched.
	SetPage(slot int, page int) error
	// SetPageForAddress behaves as SetPage for the slot containing a given
	// CPU address.  This is the form used by page-switch directives which
	// name an address rather than a slot.
	SetPageForAddress(addr uint16, page int) error
	// ValidateSlot checks a slot index against the slot count.
	ValidateSlot(slot int) error
	// PageBytes returns a read-only view of exactly one page's storage.
	// Panics on the flat topology.  Callers must not mutate it.
	PageBytes(page int) []byte
	// SlotBytes returns a read-only view of the page currently mapped into a
	// given slot.  Panics on the flat topology.  Callers must not mutate it.
	SlotBytes(slot int) []byte
}

// Shared word/bulk forms, expressed over single byte writes so that every
// variant inherits identical wraparound and commit semantics.

func writeWord(m AddressSpace, addr uint16, word uint16, ephemeral bool) {
	m.WriteByte(addr, uint8(word), ephemeral)
	m.WriteByte(addr+1, uint8(word>>8), ephemeral)
}

func copyInto(m AddressSpace, offset uint16, src []byte) {
	// Wrap around the destination address while copying
	for i := range src {
		m.WriteByte(offset+uint16(i), src[i], false)
	}
}

func fillRange(m AddressSpace, offset uint16, value uint8, length uint16) {
	// Wrap around the destination address while filling
	for i := uint16(0); i < length; i++ {
		m.WriteByte(offset+i, value, false)
	}
}

func readRange(m AddressSpace, dst []byte, addr uint16) {
	for i := range dst {
		dst[i] = m.ReadByte(addr + uint16(i))
	}
}
