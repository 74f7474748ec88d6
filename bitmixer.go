package automaton

const (
	// Golden ratio bit mixers.
	PHI_C32 = uint32(0x9e3779b9)
	PHI_C64 = uint64(0x9e3779b97f4a7c15)

	fnvOffset32 = uint32(2166136261)
	fnvPrime32  = uint32(16777619)
)

func mix(key int) int {
	return mix32(key)
}

// Final mixing step of 32-bit MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// hashTokens Hashes an ordered token list. Each token is FNV-1a hashed and
// mixed, then folded in with the golden ratio so that position matters.
func hashTokens(tokens []string) uint64 {
	h := uint64(len(tokens))
	for _, t := range tokens {
		f := fnvOffset32
		for i := 0; i < len(t); i++ {
			f ^= uint32(t[i])
			f *= fnvPrime32
		}
		h = h*PHI_C64 + uint64(uint32(mix(int(f))))
	}
	return h
}
