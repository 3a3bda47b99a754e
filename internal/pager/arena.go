package pager

// Extend grows the current process's arena by one page (spec §4.3). It
// fails — returning ErrExhausted, mutating nothing — if appending one page
// would exceed ARENA_BASE+ARENA_SIZE, or if the block pool is empty. The
// disk block is reserved eagerly precisely so a later write can never
// find the disk exhausted.
func (p *Pager) Extend() (addr uint64, err error) {
	proc := p.current
	if proc == nil {
		return 0, ErrNoCurrentProcess
	}

	pageSize := uint64(p.cfg.PageSize)
	if proc.nextVAddr+pageSize > p.cfg.ArenaBase+p.cfg.ArenaSize {
		return 0, ErrExhausted
	}

	block, ok := p.blocks.acquire()
	if !ok {
		return 0, ErrExhausted
	}

	rec := &pageRecord{
		pid:         proc.pid,
		vpage:       proc.nextVPage,
		block:       block,
		zeroPending: true,
	}
	proc.records = append(proc.records, rec)
	proc.table = append(proc.table, PageTableEntry{})

	addr = proc.nextVAddr
	proc.nextVPage++
	proc.nextVAddr += pageSize

	p.log.Debug("arena extended", "pid", proc.pid, "vpage", rec.vpage, "block", block, "addr", addr)
	return addr, nil
}
