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

// FlatSpace is the PLAIN topology: a single contiguous 64KB region with no
// paging.  CPU addresses are storage offsets.
type FlatSpace struct {
	storage   []uint8
	committed *bitset.BitSet
}

// NewFlatSpace constructs an empty 64KB flat address space.
func NewFlatSpace() *FlatSpace {
	return &FlatSpace{
		storage:   make([]uint8, SpaceSize),
		committed: bitset.New(SpaceSize),
	}
}

// Name returns the topology name.
func (p *FlatSpace) Name() string {
	return "PLAIN"
}

// ReadByte returns the byte at a given address.
func (p *FlatSpace) ReadByte(addr uint16) uint8 {
	return p.storage[addr]
}

// WriteByte deposits a byte at a given address, marking it committed unless
// the write is ephemeral.
func (p *FlatSpace) WriteByte(addr uint16, value uint8, ephemeral bool) {
	p.storage[addr] = value
	//
	if !ephemeral {
		p.committed.Set(uint(addr))
	}
}

// WriteWord writes a little-endian word, the high byte wrapping at 0xFFFF.
func (p *FlatSpace) WriteWord(addr uint16, word uint16, ephemeral bool) {
	writeWord(p, addr, word, ephemeral)
}

// UsedAddr reports whether a given address has received a committing write.
func (p *FlatSpace) UsedAddr(addr uint16) bool {
	return p.committed.Test(uint(addr))
}

// ClearEphemerals zeroes every byte which was never committed.
func (p *FlatSpace) ClearEphemerals() {
	for i := range p.storage {
		if !p.committed.Test(uint(i)) {
			p.storage[i] = 0
		}
	}
}

// Clear zeroes all storage and all committed flags.
func (p *FlatSpace) Clear() {
	clear(p.storage)
	p.committed.ClearAll()
}

// CopyInto writes a buffer starting at a given address, committing each byte
// and wrapping at the 64KB boundary.
func (p *FlatSpace) CopyInto(offset uint16, src []byte) {
	copyInto(p, offset, src)
}

// FillRange writes a repeated byte starting at a given address, committing
// each byte and wrapping at the 64KB boundary.
func (p *FlatSpace) FillRange(offset uint16, value uint8, length uint16) {
	fillRange(p, offset, value, length)
}

// ReadRange fills dst with bytes starting at a given address, wrapping at the
// 64KB boundary.
func (p *FlatSpace) ReadRange(dst []byte, addr uint16) {
	readRange(p, dst, addr)
}

// ReadRangeInSlot is a paged-only operation; calling it on the flat topology
// is a contract violation.
func (p *FlatSpace) ReadRangeInSlot(dst []byte, slot int, offset uint16) {
	panic("ReadRangeInSlot invoked against the PLAIN topology")
}

// Bytes returns a read-only view over the 64KB region.
func (p *FlatSpace) Bytes() []byte {
	return p.storage
}

// InjectFirmwareDefaults is a paged-only operation; the flat topology has no
// firmware image and callers must reject the request before it gets here.
func (p *FlatSpace) InjectFirmwareDefaults(convention Convention) {
	panic("InjectFirmwareDefaults invoked against the PLAIN topology")
}

// IsPaged reports false: the flat topology has no pages.
func (p *FlatSpace) IsPaged() bool {
	return false
}

// PageCount returns zero for the flat topology.
func (p *FlatSpace) PageCount() int {
	return 0
}

// SlotCount returns zero for the flat topology.
func (p *FlatSpace) SlotCount() int {
	return 0
}

// DefaultSlot returns zero for the flat topology.
func (p *FlatSpace) DefaultSlot() int {
	return 0
}

// PageInSlot returns zero for the flat topology.
func (p *FlatSpace) PageInSlot(slot int) int {
	return 0
}

// PageForAddress returns zero for the flat topology.
func (p *FlatSpace) PageForAddress(addr uint16) int {
	return 0
}

// SetPage always fails on the flat topology.
func (p *FlatSpace) SetPage(slot int, page int) error {
	return fmt.Errorf("%w: the PLAIN topology does not support page switching", ErrUnsupportedOperation)
}

// SetPageForAddress always fails on the flat topology.
func (p *FlatSpace) SetPageForAddress(addr uint16, page int) error {
	return p.SetPage(0, 0)
}

// ValidateSlot always fails on the flat topology, which has no slots.
func (p *FlatSpace) ValidateSlot(slot int) error {
	return p.SetPage(0, 0)
}

// PageBytes is a paged-only operation; calling it on the flat topology is a
// contract violation.
func (p *FlatSpace) PageBytes(page int) []byte {
	panic("PageBytes invoked against the PLAIN topology")
}

// SlotBytes is a paged-only operation; calling it on the flat topology is a
// contract violation.
func (p *FlatSpace) SlotBytes(slot int) []byte {
	panic("SlotBytes invoked against the PLAIN topology")
}
