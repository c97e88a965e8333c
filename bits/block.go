package bits

//
// Block arithmetic
//

import "github.com/pi/bitvector/md"

// Block is the unit of bit storage.
type Block = uint

const BitsPerBlock = md.BitsPerUint
const BlockSizeShift = md.UintSizeShift
const BlockBitsMask = md.UintSizeMask

const AllOnes = ^Block(0)

// SWAR popcount constants: the byte patterns 0x55, 0x33, 0x0f and 0x01
// repeated across the whole block.
const (
	m1  = AllOnes / 0xff * 0x55
	m2  = AllOnes / 0xff * 0x33
	m4  = AllOnes / 0xff * 0x0f
	h01 = AllOnes / 0xff * 0x01
)

func BitIndex(n uint) uint {
	return n & BlockBitsMask
}

func BitMask(n uint) Block {
	return Block(1) << BitIndex(n)
}

func BlockIndex(n uint) uint {
	return n >> BlockSizeShift
}

// BlocksFor returns the number of blocks needed to hold n bits.
func BlocksFor(n uint) uint {
	return (n >> BlockSizeShift) + ((n&BlockBitsMask + BlockBitsMask) >> BlockSizeShift)
}

func BlocksToBits(k uint) uint {
	return k << BlockSizeShift
}

// LowMask returns a block with the low n bits set, n <= BitsPerBlock.
func LowMask(n uint) Block {
	if n >= BitsPerBlock {
		return AllOnes
	}
	return (Block(1) << n) - 1
}

// RoundUpPow2 returns the smallest power of two >= n. Zero maps to zero,
// and so does any n above the largest representable power of two.
func RoundUpPow2(n uint) uint {
	n--
	for shift := uint(1); shift < BitsPerBlock; shift <<= 1 {
		n |= n >> shift
	}
	return n + 1
}

// PopCount counts set bits with the parallel (SWAR) reduction.
func PopCount(x Block) uint {
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return uint((x * h01) >> (BitsPerBlock - 8))
}

// TrailingZeros returns the index of the lowest set bit, or BitsPerBlock
// for zero.
func TrailingZeros(x Block) uint {
	if x == 0 {
		return BitsPerBlock
	}
	return PopCount((x & -x) - 1)
}
