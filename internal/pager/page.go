package pager

// pageRecord is the authoritative metadata for one virtual page of one
// process (spec §3's PageRecord). owner is recorded as a pid, not a
// pointer to the owning processEntry: the clock queue holds these
// records too, and a record must never be able to keep its owning
// processEntry alive or mutate it directly — eviction looks the owner up
// by pid through Pager.processes, which is the design note in spec §9
// ("the record-side back-pointer is a lookup key, never an owning
// reference").
type pageRecord struct {
	pid   int
	vpage int

	frame int // meaningful only while resident
	block int // reserved permanently at extend time

	modified    bool
	referenced  bool
	resident    bool
	zeroPending bool
}
