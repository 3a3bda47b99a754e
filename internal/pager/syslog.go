package pager

// Syslog validates that [ptr, ptr+length) lies in the current process's
// arena, forces each page it touches resident one page at a time via
// Fault, copies the bytes out of physical memory, and logs the result
// (spec §4.10). It re-validates residency per byte rather than per page
// because a prior iteration's fault only guarantees the page it just
// faulted in, not the one a later byte falls into.
func (p *Pager) Syslog(ptr uint64, length int) error {
	if length == 0 {
		return ErrInvalidAddress
	}
	proc := p.current
	if proc == nil {
		return ErrNoCurrentProcess
	}
	if ptr < p.cfg.ArenaBase || ptr+uint64(length) > proc.nextVAddr {
		return ErrInvalidAddress
	}

	mask := p.pageOffsetMask()
	buf := make([]byte, length)

	for i := 0; i < length; i++ {
		v := ptr + uint64(i)
		vpage := int((v - p.cfg.ArenaBase) / uint64(p.cfg.PageSize))

		if !proc.table[vpage].ReadEnable {
			if err := p.Fault(v, false); err != nil {
				return err
			}
		}

		frame := proc.table[vpage].Frame
		off := int(v & mask)
		buf[i] = p.mem.Page(frame)[off]
	}

	p.log.Info("syslog", "pid", proc.pid, "ptr", ptr, "len", length, "data", string(buf))
	return nil
}
