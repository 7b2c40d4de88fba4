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
	"sort"

	log "github.com/sirupsen/logrus"
)

// Topology describes one entry of the fixed topology catalog.
type Topology struct {
	// Catalog name, e.g. "ZXSPECTRUM128".
	Name string
	// Total page count; zero denotes the flat topology.
	Pages int
}

// BackingSize returns the total size of the backing store in bytes.
func (p Topology) BackingSize() int {
	if p.Pages == 0 {
		return SpaceSize
	}
	//
	return p.Pages * PageSize
}

// catalog maps topology names to their page counts.  Zero pages denotes the
// flat topology.
var catalog = map[string]int{
	"PLAIN":          0,
	"ZXSPECTRUM128":  8,
	"ZXSPECTRUM256":  16,
	"ZXSPECTRUM512":  32,
	"ZXSPECTRUM1024": 64,
}

// Registry owns the active address space and is the only object the rest of
// the assembler interacts with.  A topology is selected once by name before
// assembly begins; every other operation forwards to the active space.
// Forwarding before a topology has been selected is a programming error and
// panics.
type Registry struct {
	active AddressSpace
}

// NewRegistry constructs a registry with no active address space.
func NewRegistry() *Registry {
	return &Registry{}
}

// Topologies returns the catalog entries in name order.
func Topologies() []Topology {
	entries := make([]Topology, 0, len(catalog))
	//
	for name, pages := range catalog {
		entries = append(entries, Topology{name, pages})
	}
	//
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	//
	return entries
}

// IsActive reports whether a topology has been selected.
func (p *Registry) IsActive() bool {
	return p.active != nil
}

// SelectTopology looks a name up in the catalog, constructs the corresponding
// address space and installs it as active, discarding any prior instance.
func (p *Registry) SelectTopology(name string) error {
	pages, ok := catalog[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopology, name)
	}
	//
	if pages == 0 {
		p.active = NewFlatSpace()
	} else {
		p.active = NewBankedSpace(name, pages)
	}
	//
	log.Debugf("selected memory topology %s (%d bytes backing store)", name, Topology{name, pages}.BackingSize())
	//
	return nil
}

// Active returns the active address space.
func (p *Registry) Active() AddressSpace {
	return p.space()
}

func (p *Registry) space() AddressSpace {
	if p.active == nil {
		panic("no memory topology selected")
	}
	//
	return p.active
}

// Name returns the active topology's name.
func (p *Registry) Name() string {
	return p.space().Name()
}

// IsPaged forwards to the active space.
func (p *Registry) IsPaged() bool {
	return p.space().IsPaged()
}

// PageCount forwards to the active space.
func (p *Registry) PageCount() int {
	return p.space().PageCount()
}

// SlotCount forwards to the active space.
func (p *Registry) SlotCount() int {
	return p.space().SlotCount()
}

// DefaultSlot forwards to the active space.
func (p *Registry) DefaultSlot() int {
	return p.space().DefaultSlot()
}

// PageInSlot forwards to the active space.
func (p *Registry) PageInSlot(slot int) int {
	return p.space().PageInSlot(slot)
}

// PageForAddress forwards to the active space.
func (p *Registry) PageForAddress(addr uint16) int {
	return p.space().PageForAddress(addr)
}

// SetPage forwards to the active space.
func (p *Registry) SetPage(slot int, page int) error {
	return p.space().SetPage(slot, page)
}

// SetPageForAddress forwards to the active space.
func (p *Registry) SetPageForAddress(addr uint16, page int) error {
	return p.space().SetPageForAddress(addr, page)
}

// ValidateSlot forwards to the active space.
func (p *Registry) ValidateSlot(slot int) error {
	return p.space().ValidateSlot(slot)
}

// ReadByte forwards to the active space.
func (p *Registry) ReadByte(addr uint16) uint8 {
	return p.space().ReadByte(addr)
}

// WriteByte performs a committing byte write on the active space.  The
// speculative path goes through Active() directly.
func (p *Registry) WriteByte(addr uint16, value uint8) {
	p.space().WriteByte(addr, value, false)
}

// WriteWord performs a committing word write on the active space.
func (p *Registry) WriteWord(addr uint16, word uint16) {
	p.space().WriteWord(addr, word, false)
}

// UsedAddr forwards to the active space.
func (p *Registry) UsedAddr(addr uint16) bool {
	return p.space().UsedAddr(addr)
}

// CopyInto forwards to the active space.
func (p *Registry) CopyInto(offset uint16, src []byte) {
	p.space().CopyInto(offset, src)
}

// FillRange forwards to the active space.
func (p *Registry) FillRange(offset uint16, value uint8, length uint16) {
	p.space().FillRange(offset, value, length)
}

// ReadRange forwards to the active space.
func (p *Registry) ReadRange(dst []byte, addr uint16) {
	p.space().ReadRange(dst, addr)
}

// ReadRangeInSlot forwards to the active space.
func (p *Registry) ReadRangeInSlot(dst []byte, slot int, offset uint16) {
	p.space().ReadRangeInSlot(dst, slot, offset)
}

// Bytes forwards to the active space.
func (p *Registry) Bytes() []byte {
	return p.space().Bytes()
}

// PageBytes forwards to the active space.
func (p *Registry) PageBytes(page int) []byte {
	return p.space().PageBytes(page)
}

// SlotBytes forwards to the active space.
func (p *Registry) SlotBytes(slot int) []byte {
	return p.space().SlotBytes(slot)
}

// Clear forwards to the active space.  Called between passes.
func (p *Registry) Clear() {
	p.space().Clear()
}

// ClearEphemerals forwards to the active space.  Called after any
// speculative-evaluation sub-phase within a pass.
func (p *Registry) ClearEphemerals() {
	p.space().ClearEphemerals()
}

// InjectFirmwareDefaults forwards to the active space.
func (p *Registry) InjectFirmwareDefaults(convention Convention) {
	p.space().InjectFirmwareDefaults(convention)
}
