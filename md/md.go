package md

// UintSizeShift is log2 of the bit width of uint.
const UintSizeShift = 5 + (^uint(0) >> 63)
const BitsPerUint = (1 << UintSizeShift)
const BytesPerUint = BitsPerUint / 8
const UintSizeMask = BitsPerUint - 1

const MaxUint = ^uint(0)
const MaxInt = int(MaxUint >> 1)

// PageSize is the granularity VAlloc rounds requests up to.
const PageSize = 4096

// PageRound rounds size up to a whole number of pages.
func PageRound(size uint) uint {
	return (size + PageSize - 1) &^ (PageSize - 1)
}
