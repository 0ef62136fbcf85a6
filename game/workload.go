package game

import "time"

// Burn keeps the CPU busy for at least d of wall-clock time, standing
// in for an expensive AI computation. The xor accumulator is returned
// so the loop body cannot be optimized away.
func Burn(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	var acc uint64
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		for i := uint64(0); i < 256; i++ {
			acc ^= (acc << 3) + i*2654435761
		}
	}
	return acc
}
