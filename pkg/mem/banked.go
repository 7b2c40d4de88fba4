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

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// resetSlotPages is the slot-to-page mapping established by the reference
// machine's hardware at reset.
var resetSlotPages = [NumSlots]int{0, 5, 2, 7}

// BankedSpace models the paged topologies (ZX Spectrum 128 and its bigger
// siblings): a backing store of 16KB pages, four of which are visible at any
// time through the slots of the 64KB CPU address space.  The slot mapping
// mutates on every page-switch directive and translation always reflects the
// mapping current at the time of the access, including mid bulk operation.
type BankedSpace struct {
	name      string
	numPages  int
	slotPages [NumSlots]int
	storage   []uint8
	committed *bitset.BitSet
}

// NewBankedSpace constructs a banked address space with a given number of
// 16KB pages and the hardware reset slot mapping.
func NewBankedSpace(name string, numPages int) *BankedSpace {
	size := uint(numPages) * PageSize
	//
	return &BankedSpace{
		name:      name,
		numPages:  numPages,
		slotPages: resetSlotPages,
		storage:   make([]uint8, size),
		committed: bitset.New(size),
	}
}

// offset translates a CPU address into a physical storage offset through the
// current slot mapping.  Pure function of (addr, slotPages); evaluated on
// every access, never cached.
func (p *BankedSpace) offset(addr uint16) uint {
	return uint(p.slotPages[addr/PageSize])*PageSize + uint(addr%PageSize)
}

// Name returns the topology name.
func (p *BankedSpace) Name() string {
	return p.name
}

// ReadByte returns the byte visible at a given CPU address through the
// current slot mapping.
func (p *BankedSpace) ReadByte(addr uint16) uint8 {
	return p.storage[p.offset(addr)]
}

// WriteByte deposits a byte at the translated offset of a given CPU address,
// marking it committed unless the write is ephemeral.
func (p *BankedSpace) WriteByte(addr uint16, value uint8, ephemeral bool) {
	i := p.offset(addr)
	p.storage[i] = value
	//
	if !ephemeral {
		p.committed.Set(i)
	}
}

// WriteWord writes a little-endian word, the high byte wrapping at 0xFFFF.
func (p *BankedSpace) WriteWord(addr uint16, word uint16, ephemeral bool) {
	writeWord(p, addr, word, ephemeral)
}

// UsedAddr reports whether the translated offset of a given CPU address has
// received a committing write.
func (p *BankedSpace) UsedAddr(addr uint16) bool {
	return p.committed.Test(p.offset(addr))
}

// ClearEphemerals zeroes every storage offset which was never committed.
func (p *BankedSpace) ClearEphemerals() {
	for i := range p.storage {
		if !p.committed.Test(uint(i)) {
			p.storage[i] = 0
		}
	}
}

// Clear zeroes all storage and all committed flags.  The slot mapping is
// deliberately left as-is.
func (p *BankedSpace) Clear() {
	clear(p.storage)
	p.committed.ClearAll()
}

// CopyInto writes a buffer starting at a given CPU address, committing each
// byte and wrapping at the 64KB boundary.
func (p *BankedSpace) CopyInto(offset uint16, src []byte) {
	copyInto(p, offset, src)
}

// FillRange writes a repeated byte starting at a given CPU address,
// committing each byte and wrapping at the 64KB boundary.
func (p *BankedSpace) FillRange(offset uint16, value uint8, length uint16) {
	fillRange(p, offset, value, length)
}

// ReadRange fills dst with translated reads starting at a given CPU address,
// wrapping at the 64KB boundary.
func (p *BankedSpace) ReadRange(dst []byte, addr uint16) {
	readRange(p, dst, addr)
}

// ReadRangeInSlot fills dst with translated reads starting at a given in-page
// offset within a given slot window, wrapping at the 64KB boundary.
func (p *BankedSpace) ReadRangeInSlot(dst []byte, slot int, offset uint16) {
	addr := uint16(slot)*PageSize + offset
	readRange(p, dst, addr)
}

// Bytes returns a read-only view over the whole backing store, in page order
// and independent of the slot mapping.
func (p *BankedSpace) Bytes() []byte {
	return p.storage
}

// InjectFirmwareDefaults overwrites the system-variable area with the startup
// image of a given convention, through committing translated writes.  With
// the reset mapping the image lands in physical page 5, as on hardware.
func (p *BankedSpace) InjectFirmwareDefaults(convention Convention) {
	injectFirmwareDefaults(p, convention)
}

// IsPaged reports true.
func (p *BankedSpace) IsPaged() bool {
	return true
}

// PageCount returns the total number of backing pages.
func (p *BankedSpace) PageCount() int {
	return p.numPages
}

// SlotCount returns the number of slot windows.
func (p *BankedSpace) SlotCount() int {
	return NumSlots
}

// DefaultSlot returns the slot treated as current at reset (the topmost
// 16KB, matching hardware convention).
func (p *BankedSpace) DefaultSlot() int {
	return 3
}

// PageInSlot returns the page currently mapped into a given slot.
func (p *BankedSpace) PageInSlot(slot int) int {
	return p.slotPages[slot]
}

// PageForAddress returns the page currently mapped at a given CPU address.
func (p *BankedSpace) PageForAddress(addr uint16) int {
	return p.slotPages[addr/PageSize]
}

// SetPage maps a page into a slot.  On failure the mapping is untouched; on
// success the new mapping applies to the very next byte access.
func (p *BankedSpace) SetPage(slot int, page int) error {
	if err := p.ValidateSlot(slot); err != nil {
		return err
	}
	//
	if page < 0 || page >= p.numPages {
		return fmt.Errorf("%w: page number should be in range 0..%d", ErrInvalidPage, p.numPages-1)
	}
	//
	p.slotPages[slot] = page
	//
	return nil
}

// SetPageForAddress behaves as SetPage for the slot containing a given CPU
// address.
func (p *BankedSpace) SetPageForAddress(addr uint16, page int) error {
	return p.SetPage(int(addr/PageSize), page)
}

// ValidateSlot checks a slot index against the slot count.
func (p *BankedSpace) ValidateSlot(slot int) error {
	if slot < 0 || slot >= NumSlots {
		return fmt.Errorf("%w: slot number should be in range 0..%d", ErrInvalidSlot, NumSlots-1)
	}
	//
	return nil
}

// PageBytes returns a read-only view of exactly one page's storage.
func (p *BankedSpace) PageBytes(page int) []byte {
	return p.storage[page*PageSize : (page+1)*PageSize]
}

// SlotBytes returns a read-only view of the page currently mapped into a
// given slot.
func (p *BankedSpace) SlotBytes(slot int) []byte {
	return p.PageBytes(p.slotPages[slot])
}

// WriteBytePage deposits a committing byte directly into a given page,
// bypassing the slot mapping.  Callers are expected to pre-validate the
// offset against the known page size; an overflowing offset is a contract
// violation, never a user diagnostic.
func (p *BankedSpace) WriteBytePage(page int, offset uint16, value uint8) {
	if offset >= PageSize {
		panic(fmt.Sprintf("in-page offset %d does not fit in page of size %d", offset, PageSize))
	}
	//
	i := uint(page)*PageSize + uint(offset)
	p.storage[i] = value
	p.committed.Set(i)
}

// CopyIntoPage writes a buffer directly into a given page, committing each
// byte.  The destination offset wraps within the page, not the 64KB space.
func (p *BankedSpace) CopyIntoPage(page int, offset uint16, src []byte) {
	// Wrap around the in-page offset while copying
	for i := range src {
		p.WriteBytePage(page, (offset+uint16(i))%PageSize, src[i])
	}
}

// FillPage writes a repeated byte directly into a given page, committing each
// byte, with the same in-page wraparound as CopyIntoPage.
func (p *BankedSpace) FillPage(page int, offset uint16, value uint8, length uint16) {
	// Wrap around the in-page offset while filling
	for i := uint16(0); i < length; i++ {
		p.WriteBytePage(page, (offset+i)%PageSize, value)
	}
}
