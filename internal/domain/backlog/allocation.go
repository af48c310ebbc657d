package backlog

// Allocation is the result of applying produced units to one entry.
type Allocation struct {
	Entry     *Entry
	Applied   int64
	Exhausted bool // entry fully drained and should be deactivated
}

// Allocate distributes available produced units across entries in the
// given order (callers pass them oldest first). A fully covered entry
// is marked exhausted and allocation continues with the next one; an
// entry larger than the remainder absorbs everything left and stops
// the walk. Returns the per-entry allocations and the units left over.
func Allocate(entries []*Entry, available int64) ([]Allocation, int64) {
	if available <= 0 {
		return nil, available
	}

	var allocations []Allocation
	remaining := available

	for _, entry := range entries {
		if remaining == 0 {
			break
		}

		if entry.RequiredQuantity <= remaining {
			remaining -= entry.RequiredQuantity
			allocations = append(allocations, Allocation{
				Entry:     entry,
				Applied:   entry.RequiredQuantity,
				Exhausted: true,
			})
			continue
		}

		allocations = append(allocations, Allocation{
			Entry:   entry,
			Applied: remaining,
		})
		remaining = 0
	}

	return allocations, remaining
}
