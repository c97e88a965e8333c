package bits

var smallBitLenTable = [16]uint{
	0,
	1,
	2,
	2,
	3,
	3,
	3,
	3,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
}

// BitLen returns the minimum number of bits needed to represent x.
func BitLen(x Block) (n uint) {
	if BitsPerBlock == 64 && x >= 0x80000000 {
		x >>= BitsPerBlock / 2
		n += BitsPerBlock / 2
	}
	if x >= 0x8000 {
		x >>= 16
		n += 16
	}
	if x >= 0x80 {
		x >>= 8
		n += 8
	}
	if x >= 0x8 {
		x >>= 4
		n += 4
	}
	return n + smallBitLenTable[x]
}
