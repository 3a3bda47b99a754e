// Package physmem backs the pager's "pm_physmem" collaborator
// (spec §6) with a single anonymous mmap region rather than a plain
// make([]byte, ...) slice — the same raw-mapped-memory approach the
// retrieved gvisor.dev/gvisor/pkg/hostarch and pkg/memutil sources use to
// back guest physical pages, applied here to a much smaller, single
// address space.
package physmem

import "golang.org/x/sys/unix"

// Region is frames*pageSize bytes of anonymous, zero-initialized memory,
// sliced into pager.PhysMem's one-frame-at-a-time view.
type Region struct {
	data     []byte
	pageSize int
}

// New mmaps a region large enough for frames pages of pageSize bytes
// each.
func New(frames, pageSize int) (*Region, error) {
	size := frames * pageSize
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Region{data: data, pageSize: pageSize}, nil
}

// Page returns the byte slice backing frame. The slice aliases the
// region's memory directly; writes through it are visible to subsequent
// Page calls for the same frame.
func (r *Region) Page(frame int) []byte {
	start := frame * r.pageSize
	return r.data[start : start+r.pageSize]
}

// Zero clears frame's bytes to 0.
func (r *Region) Zero(frame int) {
	p := r.Page(frame)
	for i := range p {
		p[i] = 0
	}
}

// Close unmaps the region. Once closed, Page and Zero must not be called.
func (r *Region) Close() error {
	return unix.Munmap(r.data)
}
