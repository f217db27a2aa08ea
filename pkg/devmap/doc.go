// Package devmap models the JTAG and configuration-register map of Xilinx
// 32-bit device families and validates externally supplied descriptions
// against it.
//
// # Overview
//
// A description is decoded elsewhere (YAML, JSON, ...) into generic maps,
// slices and integers. Parse checks that structure against the closed shape
// of one family and returns an immutable Descriptor. Transport code then uses
// Lookup to fetch the codes and register words it needs without re-checking
// anything.
//
// Four families are supported:
//   - s7: 7-series
//   - us: UltraScale
//   - up: UltraScale+
//   - zp: Zynq UltraScale+
//
// # Shape
//
// Every family has the same outline:
//
//	jtag:
//	  device:
//	    cntl: [ints]
//	  slrs:            # one entry per die, null when the die has no JTAG block
//	    - idcode: [ints]
//	      ...
//	registers:
//	  slrs:            # one entry per die
//	    - ctl0: int
//	      stat: int
//	      ...
//
// The per-die JTAG block is the only part that varies. s7, up and zp dies
// carry idcode, usercode, fuse_dna, fuse_key, fuse_user and user1..user4.
// us dies add fuse_user_128, fuse_rsa and fuse_sec. The per-die register
// block (ctl0, stat, cor0, idcode, axss, cor1, wbstar, timer, bootsts, ctl1,
// bspi) is shared by all families.
//
// The variation lives in a schema table keyed by family; a single walker
// validates any family against its table.
//
// # Validation
//
// Every field of a block is mandatory and values may not be null. Within
// each mapping, missing keys are reported first (ErrSchemaMismatch), then
// keys outside the family's field set (ErrUnknownField), then values of the
// wrong shape (ErrTypeMismatch). Errors are *FieldError values carrying the
// full path, e.g. "s7.registers.slrs[0].ctl0".
//
// ValidateSLRAlignment is separate from Parse: jtag.slrs and registers.slrs
// may come from differently authored sections and are only compared once
// combined.
//
// # Usage
//
//	d, err := devmap.Parse(raw, devmap.FamilyUS)
//	if err != nil {
//		return err
//	}
//	if err := devmap.ValidateSLRAlignment(d); err != nil {
//		return err
//	}
//	v, ok := d.Lookup(devmap.MustParsePath("jtag.slrs[1].fuse_dna"))
//	if !ok {
//		// die 1 does not expose fuse_dna
//	}
//	codes := v.Ints()
//
// Integer values are treated as opaque; no bit-width is enforced.
package devmap
