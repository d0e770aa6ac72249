package hashtable

// Stats describes how the entries of a table are spread over its slots.
type Stats struct {
	Slots        uint32
	Entries      int
	UsedSlots    uint32
	LongestChain int
	LoadFactor   float64
}

// Stats walks every chain and summarizes the table's occupancy.
func (t *HashTable[V]) Stats() Stats {
	s := Stats{
		Slots:   t.SlotCount(),
		Entries: t.size,
	}

	for _, head := range t.buckets {
		if head == nil {
			continue
		}

		s.UsedSlots++

		length := 0
		for e := head; e != nil; e = e.next {
			length++
		}
		s.LongestChain = max(s.LongestChain, length)
	}

	s.LoadFactor = float64(s.Entries) / float64(s.Slots)

	return s
}
