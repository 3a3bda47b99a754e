package pager

// Create registers pid with a fresh, empty arena (spec §4.2). The host
// never implicitly switches, so Create does not make pid current.
func (p *Pager) Create(pid int) error {
	if _, exists := p.processes[pid]; exists {
		return ErrProcessExists
	}
	p.processes[pid] = &processEntry{
		pid:       pid,
		table:     []PageTableEntry{},
		nextVAddr: p.cfg.ArenaBase,
	}
	p.log.Debug("process created", "pid", pid)
	return nil
}

// Switch points the host's base register at pid's page table (spec
// §4.2). Extend, Fault, Destroy, and Syslog act on the resulting current
// process.
func (p *Pager) Switch(pid int) error {
	proc, exists := p.processes[pid]
	if !exists {
		return ErrUnknownProcess
	}
	p.current = proc
	p.log.Debug("switched process", "pid", pid)
	return nil
}

// CurrentPageTable returns the hardware-visible page table of the
// current process, for the host to point its base register at. Returns
// nil if there is no current process.
func (p *Pager) CurrentPageTable() []PageTableEntry {
	if p.current == nil {
		return nil
	}
	return p.current.table
}
