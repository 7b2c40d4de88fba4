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
	"testing"
)

func newZX128() *BankedSpace {
	return NewBankedSpace("ZXSPECTRUM128", 8)
}

func Test_Banked_Parameters(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	//
	if !m.IsPaged() {
		t.Error("banked topology reported as unpaged")
	}
	//
	if m.PageCount() != 8 || m.SlotCount() != 4 || m.DefaultSlot() != 3 {
		t.Errorf("unexpected paging parameters: %d pages, %d slots, default slot %d",
			m.PageCount(), m.SlotCount(), m.DefaultSlot())
	}
	//
	if len(m.Bytes()) != 8*PageSize {
		t.Errorf("expected %d bytes of backing store, got %d", 8*PageSize, len(m.Bytes()))
	}
}

func Test_Banked_ResetMapping(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	// Hardware reset state: pages 0, 5, 2, 7.
	for slot, page := range []int{0, 5, 2, 7} {
		if m.PageInSlot(slot) != page {
			t.Errorf("slot %d: got page %d, want %d", slot, m.PageInSlot(slot), page)
		}
	}
	//
	if m.PageForAddress(0x4000) != 5 || m.PageForAddress(0xFFFF) != 7 {
		t.Error("address-to-page resolution disagrees with reset mapping")
	}
}

func Test_Banked_Translation(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	// Slot 1 maps page 5, so 0x4000 is physical offset 5*0x4000.
	m.WriteByte(0x4000, 0xAB, false)
	//
	if m.Bytes()[5*PageSize] != 0xAB {
		t.Error("write at 0x4000 did not land in page 5")
	}
	// Slot 3 maps page 7.
	m.WriteByte(0xFFFF, 0xCD, false)
	//
	if m.Bytes()[7*PageSize+0x3FFF] != 0xCD {
		t.Error("write at 0xFFFF did not land at the end of page 7")
	}
}

func Test_Banked_PageSwitch(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	//
	m.WriteByte(0x4000, 0x55, false)
	// Remap slot 1 from page 5 to page 3: the same CPU address now reads
	// different storage.
	checkOk(t, m.SetPage(1, 3))
	checkByte(t, m, 0x4000, 0x00)
	//
	if m.PageForAddress(0x4000) != 3 {
		t.Errorf("expected page 3 at 0x4000, got %d", m.PageForAddress(0x4000))
	}
	// The old contents are still in page 5.
	if m.PageBytes(5)[0] != 0x55 {
		t.Error("page 5 lost its contents across a page switch")
	}
	// Switching back restores visibility.
	checkOk(t, m.SetPage(1, 5))
	checkByte(t, m, 0x4000, 0x55)
}

func Test_Banked_SetPageForAddress(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	// 0xC000 lies in slot 3.
	checkOk(t, m.SetPageForAddress(0xC000, 1))
	//
	if m.PageInSlot(3) != 1 {
		t.Errorf("expected page 1 in slot 3, got %d", m.PageInSlot(3))
	}
	// Other slots are untouched.
	if m.PageInSlot(0) != 0 || m.PageInSlot(1) != 5 || m.PageInSlot(2) != 2 {
		t.Error("unrelated slot mappings changed")
	}
}

func Test_Banked_SetPageInvalid(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	//
	checkErrorIs(t, m.SetPage(1, 8), ErrInvalidPage)
	checkErrorIs(t, m.SetPage(1, -1), ErrInvalidPage)
	checkErrorIs(t, m.SetPage(4, 0), ErrInvalidSlot)
	checkErrorIs(t, m.SetPage(-1, 0), ErrInvalidSlot)
	checkErrorIs(t, m.ValidateSlot(4), ErrInvalidSlot)
	checkOk(t, m.ValidateSlot(3))
	// Failed switches leave the mapping untouched.
	if m.PageInSlot(1) != 5 {
		t.Errorf("mapping changed by a failed page switch: got %d", m.PageInSlot(1))
	}
}

func Test_Banked_ClearKeepsMapping(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	//
	checkOk(t, m.SetPage(1, 6))
	m.WriteByte(0x4000, 0x77, false)
	m.Clear()
	// Storage and usage reset, mapping preserved.
	checkByte(t, m, 0x4000, 0x00)
	checkUsed(t, m, 0x4000, false)
	//
	if m.PageForAddress(0x4000) != 6 {
		t.Errorf("clear reset the slot mapping: got page %d", m.PageForAddress(0x4000))
	}
}

func Test_Banked_EphemeralWrite(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	//
	m.WriteByte(0xC000, 0x12, true)
	checkByte(t, m, 0xC000, 0x12)
	checkUsed(t, m, 0xC000, false)
	//
	m.ClearEphemerals()
	checkByte(t, m, 0xC000, 0x00)
}

func Test_Banked_EphemeralTracksOffset(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	// Commitment is per physical offset, not per CPU address: commit 0x4000
	// in page 5, then remap and write the same address ephemerally into
	// page 0.
	m.WriteByte(0x4000, 0x11, false)
	checkOk(t, m.SetPage(1, 0))
	m.WriteByte(0x4000, 0x22, true)
	m.ClearEphemerals()
	// Page 0 copy was speculative, page 5 copy was committed.
	checkByte(t, m, 0x4000, 0x00)
	checkOk(t, m.SetPage(1, 5))
	checkByte(t, m, 0x4000, 0x11)
}

func Test_Banked_WordWraparound(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	// Low byte at the top of slot 3 (page 7), high byte wraps into slot 0
	// (page 0).
	m.WriteWord(0xFFFF, 0x1234, false)
	checkByte(t, m, 0xFFFF, 0x34)
	checkByte(t, m, 0x0000, 0x12)
	//
	if m.Bytes()[7*PageSize+0x3FFF] != 0x34 || m.Bytes()[0] != 0x12 {
		t.Error("word wraparound landed in the wrong pages")
	}
}

func Test_Banked_CopyIntoWraparound(t *testing.T) {
	t.Parallel()
	//
	var (
		m   = newZX128()
		src = make([]byte, 16)
	)
	//
	for i := range src {
		src[i] = uint8(i + 1)
	}
	//
	m.CopyInto(0xFFF8, src)
	//
	for i := uint16(0); i < 8; i++ {
		checkByte(t, m, i, uint8(9+i))
	}
	// Wrapped bytes are translated through slot 0 (page 0).
	if m.PageBytes(0)[0] != 0x09 {
		t.Error("wrapped copy did not land in the page mapped at slot 0")
	}
}

func Test_Banked_ReadRangeInSlot(t *testing.T) {
	t.Parallel()
	//
	var (
		m   = newZX128()
		dst = make([]byte, 4)
	)
	// Slot 2 maps page 2.
	m.WriteByte(0x8000, 0xDE, false)
	m.WriteByte(0x8001, 0xAD, false)
	m.ReadRangeInSlot(dst, 2, 0)
	checkBytes(t, dst, []byte{0xDE, 0xAD, 0x00, 0x00})
	// The slot window follows the current mapping.
	checkOk(t, m.SetPage(2, 4))
	m.ReadRangeInSlot(dst, 2, 0)
	checkBytes(t, dst, []byte{0x00, 0x00, 0x00, 0x00})
}

func Test_Banked_PageBytes(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	//
	for page := 0; page < 8; page++ {
		if len(m.PageBytes(page)) != PageSize {
			t.Fatalf("page %d view has %d bytes", page, len(m.PageBytes(page)))
		}
	}
	// SlotBytes resolves through the current mapping.
	m.WriteByte(0x4000, 0x42, false)
	//
	if m.SlotBytes(1)[0] != 0x42 {
		t.Error("slot view did not resolve to the mapped page")
	}
	//
	checkOk(t, m.SetPage(1, 0))
	//
	if m.SlotBytes(1)[0] != 0x00 {
		t.Error("slot view did not follow a page switch")
	}
}

func Test_Banked_WriteBytePage(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	// Direct page writes bypass the slot mapping entirely.
	m.WriteBytePage(6, 0x0010, 0x66)
	//
	if m.PageBytes(6)[0x0010] != 0x66 {
		t.Error("direct page write missed its page")
	}
	// Page 6 is not mapped anywhere at reset, so no CPU address sees it.
	for _, addr := range []uint16{0x0010, 0x4010, 0x8010, 0xC010} {
		checkByte(t, m, addr, 0x00)
	}
	// An in-page offset overflowing the page is a contract violation.
	checkPanics(t, func() { m.WriteBytePage(6, PageSize, 0x00) })
}

func Test_Banked_CopyIntoPageWraparound(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	// In-page offsets wrap within the page, not the 64KB space.
	m.CopyIntoPage(1, PageSize-2, []byte{0x01, 0x02, 0x03, 0x04})
	//
	page := m.PageBytes(1)
	//
	if page[PageSize-2] != 0x01 || page[PageSize-1] != 0x02 {
		t.Error("in-page copy missed the end of the page")
	}
	//
	if page[0] != 0x03 || page[1] != 0x04 {
		t.Error("in-page copy did not wrap to the start of the page")
	}
}

func Test_Banked_FillPage(t *testing.T) {
	t.Parallel()
	//
	m := newZX128()
	//
	m.FillPage(2, PageSize-1, 0x77, 3)
	//
	page := m.PageBytes(2)
	//
	if page[PageSize-1] != 0x77 || page[0] != 0x77 || page[1] != 0x77 || page[2] != 0x00 {
		t.Error("in-page fill did not wrap correctly")
	}
	// Direct page writes commit, so a later ephemeral clear keeps them.
	m.ClearEphemerals()
	//
	if page[0] != 0x77 {
		t.Error("in-page fill was not committed")
	}
}

func checkOk(t *testing.T, err error) {
	t.Helper()
	//
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
