// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case ExternalRAM:
		return "External RAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "IE"
	}

	return "undefined"
}

// The different memory areas in the DMG.
const (
	Undefined Area = iota
	ROM
	VRAM
	ExternalRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	InterruptEnable
)

// The origin and memory top for each area of memory.
const (
	OriginROM         = uint16(0x0000)
	MemtopROM         = uint16(0x7fff)
	OriginVRAM        = uint16(0x8000)
	MemtopVRAM        = uint16(0x9fff)
	OriginExternalRAM = uint16(0xa000)
	MemtopExternalRAM = uint16(0xbfff)
	OriginWRAM        = uint16(0xc000)
	MemtopWRAM        = uint16(0xdfff)
	OriginEcho        = uint16(0xe000)
	MemtopEcho        = uint16(0xfdff)
	OriginOAM         = uint16(0xfe00)
	MemtopOAM         = uint16(0xfe9f)
	OriginUnusable    = uint16(0xfea0)
	MemtopUnusable    = uint16(0xfeff)
	OriginIO          = uint16(0xff00)
	MemtopIO          = uint16(0xff7f)
	OriginHRAM        = uint16(0xff80)
	MemtopHRAM        = uint16(0xfffe)
)

// Registers at fixed addresses that are owned by the CPU core.
const (
	// InterruptFlags is the address of the IF register
	InterruptFlags = uint16(0xff0f)

	// InterruptEnableRegister is the address of the IE register. The IE
	// register is the only address in the InterruptEnable area
	InterruptEnableRegister = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// echo RAM is offset from the primary WRAM by this amount
const echoOffset = OriginEcho - OriginWRAM

// MapAddress translates the address argument from mirror space to primary
// space and returns the area the address belongs to.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopROM:
		return address, ROM
	case address <= MemtopVRAM:
		return address, VRAM
	case address <= MemtopExternalRAM:
		return address, ExternalRAM
	case address <= MemtopWRAM:
		return address, WRAM
	case address <= MemtopEcho:
		return address - echoOffset, Echo
	case address <= MemtopOAM:
		return address, OAM
	case address <= MemtopUnusable:
		return address, Unusable
	case address <= MemtopIO:
		return address, IO
	case address <= MemtopHRAM:
		return address, HRAM
	}
	return address, InterruptEnable
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
