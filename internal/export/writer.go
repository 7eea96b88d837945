// internal/export/writer.go
package export

import (
	"errors"
	"fmt"
	"strings"
)

// Client is the exact delivery contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Client interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// StatusWriter delivers one printer's status block into status memory.
// Delivery only: no interpretation of the snapshot.
type StatusWriter struct {
	cli    Client
	unitID uint8
	slot   uint16

	needFull bool
	last     Snapshot
	nameRegs []uint16
}

// NewStatusWriter builds a writer for one printer's block.
func NewStatusWriter(cli Client, unitID uint8, slot uint16, printerName string) (*StatusWriter, error) {
	if cli == nil {
		return nil, errors.New("export: endpoint client required")
	}
	return &StatusWriter{
		cli:      cli,
		unitID:   unitID,
		slot:     slot,
		needFull: true, // full re-assert on first successful write
		last:     Snapshot{Health: HealthUnknown},
		nameRegs: encodeNameRegs(printerName),
	}, nil
}

// WriteStatus delivers a status snapshot. After any write failure, the
// next successful call re-asserts the full block.
func (sw *StatusWriter) WriteStatus(s Snapshot) error {
	baseAddr := sw.slot * SlotsPerPrinter

	if sw.needFull {
		if err := sw.cli.WriteRegisters(sw.unitID, baseAddr, sw.fullBlockRegs(s)); err != nil {
			sw.needFull = true
			return fmt.Errorf("export: full block write failed: %w", err)
		}
		sw.needFull = false
		sw.last = s
		return nil
	}

	var errs []string

	// Slot 0 — health_code
	if sw.last.Health != s.Health {
		if err := sw.cli.WriteRegisters(sw.unitID, baseAddr+SlotHealthCode, []uint16{s.Health}); err != nil {
			errs = append(errs, fmt.Sprintf("slot0 health write failed: %v", err))
		} else {
			sw.last.Health = s.Health
		}
	}

	// Slot 1 — error_code
	if sw.last.ErrorCode != s.ErrorCode {
		if err := sw.cli.WriteRegisters(sw.unitID, baseAddr+SlotErrorCode, []uint16{s.ErrorCode}); err != nil {
			errs = append(errs, fmt.Sprintf("slot1 error_code write failed: %v", err))
		} else {
			sw.last.ErrorCode = s.ErrorCode
		}
	}

	// Slot 2 — offline_flag
	if sw.last.Offline != s.Offline {
		if err := sw.cli.WriteRegisters(sw.unitID, baseAddr+SlotOfflineFlag, []uint16{boolReg(s.Offline)}); err != nil {
			errs = append(errs, fmt.Sprintf("slot2 offline write failed: %v", err))
		} else {
			sw.last.Offline = s.Offline
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next success.
		sw.needFull = true
		return errors.New("export: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *StatusWriter) fullBlockRegs(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerPrinter)

	// Slots 0-2: live status
	regs[SlotHealthCode] = s.Health
	regs[SlotErrorCode] = s.ErrorCode
	regs[SlotOfflineFlag] = boolReg(s.Offline)

	// Slots 3..(name start - 1) are RESERVED, left as zero.

	// Printer name always lives at the end of the block.
	for i := 0; i < SlotNameSlots && i < len(sw.nameRegs); i++ {
		regs[SlotNameStart+i] = sw.nameRegs[i]
	}

	return regs
}

func boolReg(v bool) uint16 {
	if v {
		return 1
	}
	return 0
}

// encodeNameRegs packs up to 16 ASCII characters into 8 registers, two
// big-endian bytes per register.
func encodeNameRegs(name string) []uint16 {
	out := make([]uint16, SlotNameSlots)

	b := []byte(name)
	if len(b) > NameMaxChars {
		b = b[:NameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < NameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
