package namefilter

import "dualpresenter/internal/roster"

// Shares splits total items across n slots as evenly as possible. The first
// total%n slots receive one extra item.
func Shares(total, n int) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	base, extra := total/n, total%n
	shares := make([]int, n)
	for i := range shares {
		shares[i] = base
		if i < extra {
			shares[i]++
		}
	}
	return shares
}

// Distribute returns the slice of pool assigned to the card at position in a
// segment of segmentLen cards.
func Distribute(pool []roster.Name, segmentLen, position int) []roster.Name {
	if segmentLen <= 0 || position < 0 || position >= segmentLen {
		return []roster.Name{}
	}
	shares := Shares(len(pool), segmentLen)
	start := 0
	for i := 0; i < position; i++ {
		start += shares[i]
	}
	out := make([]roster.Name, shares[position])
	copy(out, pool[start:start+shares[position]])
	return out
}
