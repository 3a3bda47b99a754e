package pager

// Destroy tears down the current process (spec §4.9): every frame and
// block it holds returns to its pool, its records are dropped, its
// clock entries are scrubbed in one scan-and-filter pass, its page table
// is zeroed so a future process reusing the same storage can't inherit
// stale mappings, and the host's base register is cleared.
func (p *Pager) Destroy() error {
	proc := p.current
	if proc == nil {
		return ErrNoCurrentProcess
	}

	evicted := p.clock.FilterInPlace(func(rec *pageRecord) bool {
		return rec.pid != proc.pid
	})
	for _, rec := range evicted {
		p.frames.release(rec.frame)
	}

	for _, rec := range proc.records {
		p.blocks.release(rec.block)
	}

	for i := range proc.table {
		proc.table[i] = PageTableEntry{}
	}

	delete(p.processes, proc.pid)
	p.current = nil

	p.log.Debug("process destroyed", "pid", proc.pid, "pages", len(proc.records))
	return nil
}
