package pager

// Fault handles addr (spec §4.4). It classifies the fault by the
// record's (resident, zeroPending) pair and dispatches to one of three
// handlers sharing structure but differing in I/O — a tagged dispatch on
// that pair, per the "Polymorphism over fault kinds" design note in
// spec §9, rather than three fault subtypes.
func (p *Pager) Fault(addr uint64, write bool) error {
	proc := p.current
	if proc == nil {
		return ErrNoCurrentProcess
	}
	if addr < p.cfg.ArenaBase {
		return ErrInvalidAddress
	}

	vpage := int((addr - p.cfg.ArenaBase) / uint64(p.cfg.PageSize))
	if vpage < 0 || vpage >= len(proc.records) {
		return ErrInvalidAddress
	}
	rec := proc.records[vpage]

	switch {
	case !rec.resident && !rec.zeroPending:
		return p.normalFault(proc, rec, write)
	case !rec.resident && rec.zeroPending:
		return p.zeroFillFault(proc, rec, write)
	default:
		return p.upgradeFault(proc, rec, write)
	}
}

// normalFault is spec §4.5: the page has real disk content to bring in.
func (p *Pager) normalFault(proc *processEntry, rec *pageRecord, write bool) error {
	frame, err := p.acquireFrame()
	if err != nil {
		return err
	}

	if err := p.disk.ReadBlock(rec.block, p.mem.Page(frame)); err != nil {
		p.frames.release(frame)
		return err
	}

	rec.frame = frame
	rec.resident = true
	rec.referenced = true

	entry := PageTableEntry{Frame: frame, ReadEnable: true}
	if write {
		entry.WriteEnable = true
		rec.modified = true
	}
	proc.table[rec.vpage] = entry

	p.clock.Enqueue(rec)
	p.log.Debug("normal fault resolved", "pid", proc.pid, "vpage", rec.vpage, "frame", frame, "write", write)
	return nil
}

// zeroFillFault is spec §4.6: the page's logical content is all zeros
// and its disk block is undefined, so it must never be read from disk.
func (p *Pager) zeroFillFault(proc *processEntry, rec *pageRecord, write bool) error {
	frame, err := p.acquireFrame()
	if err != nil {
		return err
	}

	p.mem.Zero(frame)

	rec.frame = frame
	rec.resident = true
	rec.referenced = true

	entry := PageTableEntry{Frame: frame, ReadEnable: true}
	if write {
		entry.WriteEnable = true
		rec.modified = true
		rec.zeroPending = false
	}
	proc.table[rec.vpage] = entry

	p.clock.Enqueue(rec)
	p.log.Debug("zero-fill fault resolved", "pid", proc.pid, "vpage", rec.vpage, "frame", frame, "write", write)
	return nil
}

// upgradeFault is spec §4.7: the record is already resident and the
// pagetable's enable bits simply understated the needed permission. The
// clock queue already holds this record, so it is left untouched.
func (p *Pager) upgradeFault(proc *processEntry, rec *pageRecord, write bool) error {
	rec.referenced = true

	entry := proc.table[rec.vpage]
	entry.ReadEnable = true

	if write {
		rec.modified = true
		rec.zeroPending = false
		entry.WriteEnable = true
	} else {
		entry.WriteEnable = rec.modified
	}
	proc.table[rec.vpage] = entry

	p.log.Debug("permission upgrade resolved", "pid", proc.pid, "vpage", rec.vpage, "write", write)
	return nil
}

// acquireFrame returns a free frame, running replacement if the pool is
// empty.
func (p *Pager) acquireFrame() (int, error) {
	if frame, ok := p.frames.acquire(); ok {
		return frame, nil
	}
	return p.replace()
}

// replace is spec §4.8's second-chance scan. It cannot loop forever:
// each iteration clears one reference bit, so after at most one full lap
// of the clock some head has referenced=false.
func (p *Pager) replace() (int, error) {
	for {
		head, ok := p.clock.Front()
		if !ok {
			return 0, ErrExhausted
		}
		if head.referenced {
			head.referenced = false
			p.clearEnableBits(head)
			p.clock.RotateFront()
			continue
		}

		p.clock.Dequeue()
		return p.evict(head)
	}
}

// evict pops victim out of residency, writing its frame back to disk
// first unless the write would leak an undefined, never-initialized
// disk block (spec §4.8: "skip write-back when zero_pending is true").
func (p *Pager) evict(victim *pageRecord) (int, error) {
	if victim.modified && !victim.zeroPending {
		if err := p.disk.WriteBlock(victim.block, p.mem.Page(victim.frame)); err != nil {
			return 0, err
		}
	}

	frame := victim.frame
	victim.modified = false
	victim.referenced = false
	victim.resident = false
	p.clearEnableBits(victim)

	p.log.Debug("evicted page", "pid", victim.pid, "vpage", victim.vpage, "frame", frame)
	return frame, nil
}

// clearEnableBits clears both enable bits in victim's owning process's
// pagetable entry. The owner is looked up by pid rather than followed
// through an owning pointer — see the design note on pageRecord.
func (p *Pager) clearEnableBits(rec *pageRecord) {
	owner := p.processes[rec.pid]
	entry := owner.table[rec.vpage]
	entry.ReadEnable = false
	entry.WriteEnable = false
	owner.table[rec.vpage] = entry
}
