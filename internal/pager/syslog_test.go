package pager

import (
	"errors"
	"testing"
)

func TestSyslogFaultsInAndReadsZeroFilledPage(t *testing.T) {
	p, _, mem := newTestPager(2, 4)
	mustCreate(t, p, 1)
	addr, err := p.Extend()
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	if err := p.Syslog(addr, 4); err != nil {
		t.Fatalf("Syslog failed: %v", err)
	}

	rec := p.current.records[0]
	if !rec.resident {
		t.Fatal("expected Syslog to fault the page resident")
	}
	page := mem.Page(rec.frame)
	for i := 0; i < 4; i++ {
		if page[i] != 0 {
			t.Fatalf("expected zero-filled bytes, got %#x at %d", page[i], i)
		}
	}
	requireAudit(t, p)
}

// TestSyslogSpansTwoPages is spec §8's "syslog spanning two pages"
// scenario: with both pages already resident, a read crossing the page
// boundary must succeed and leave the invariants intact. The copied
// bytes go to the log and are not inspected here.
func TestSyslogSpansTwoPages(t *testing.T) {
	p, _, mem := newTestPager(2, 4)
	mustCreate(t, p, 1)

	addrA, err := p.Extend()
	if err != nil {
		t.Fatalf("Extend A failed: %v", err)
	}
	addrB, err := p.Extend()
	if err != nil {
		t.Fatalf("Extend B failed: %v", err)
	}
	if addrB != addrA+testPageSize {
		t.Fatalf("expected contiguous pages, got %#x and %#x", addrA, addrB)
	}

	// Fault page A in with a write so it holds a recognizable byte near
	// its end, and page B in with a write so it holds one near its start.
	if err := p.Fault(addrA, true); err != nil {
		t.Fatalf("fault A: %v", err)
	}
	if err := p.Fault(addrB, true); err != nil {
		t.Fatalf("fault B: %v", err)
	}
	recA := p.current.records[0]
	recB := p.current.records[1]
	mem.Page(recA.frame)[testPageSize-2] = 0x11
	mem.Page(recA.frame)[testPageSize-1] = 0x22
	mem.Page(recB.frame)[0] = 0x33
	mem.Page(recB.frame)[1] = 0x44

	start := addrA + uint64(testPageSize-2)
	if err := p.Syslog(start, 4); err != nil {
		t.Fatalf("Syslog failed: %v", err)
	}
	requireAudit(t, p)
}

func TestSyslogZeroLength(t *testing.T) {
	p, _, _ := newTestPager(2, 4)
	mustCreate(t, p, 1)
	if _, err := p.Extend(); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	if err := p.Syslog(testArenaBase, 0); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress for zero length, got %v", err)
	}
}

func TestSyslogOutOfBoundsPastArena(t *testing.T) {
	p, _, _ := newTestPager(2, 4)
	mustCreate(t, p, 1)
	addr, err := p.Extend()
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	if err := p.Syslog(addr, testPageSize+1); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress for a read past the arena, got %v", err)
	}
}

func TestSyslogBelowArena(t *testing.T) {
	p, _, _ := newTestPager(2, 4)
	mustCreate(t, p, 1)

	if err := p.Syslog(testArenaBase-8, 4); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress below arena base, got %v", err)
	}
}

func TestSyslogWithoutCurrentProcess(t *testing.T) {
	p, _, _ := newTestPager(2, 4)
	if err := p.Syslog(testArenaBase, 4); !errors.Is(err, ErrNoCurrentProcess) {
		t.Fatalf("expected ErrNoCurrentProcess, got %v", err)
	}
}
