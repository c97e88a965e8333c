package th

import "math/rand"

// SeqGen produces reproducible pseudo-random or patterned words for tests.
type SeqGen interface {
	Seed(value uint)
	Next() uint
	Reset()
}

const (
	SgRand = iota
	SgSeq
	SgTwist
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	case SgTwist:
		return &twistSG{}
	default:
		panic("invalid sequence generator type")
	}
}

// Below returns the next value of g reduced to [0, n).
func Below(g SeqGen, n uint) uint {
	if n == 0 {
		return 0
	}
	return g.Next() % n
}

// Bools returns n pseudo-random booleans drawn from g.
func Bools(g SeqGen, n int) []bool {
	r := make([]bool, n)
	var w uint
	for i := range r {
		if i%32 == 0 {
			w = g.Next()
		}
		r[i] = w&1 == 1
		w >>= 1
	}
	return r
}

type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	// Int63 leaves the top bit clear; mix in a second draw for full words.
	return uint(g.r.Int63()) ^ uint(g.r.Int63())<<1
}
func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}
func (g *randSG) Seed(value uint) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

type seqSG struct {
	cur uint
}

func (g *seqSG) Next() uint {
	g.cur++
	return g.cur
}
func (g *seqSG) Reset() {
	g.cur = 0
}
func (g *seqSG) Seed(value uint) {
	g.cur = value
}

const topBit = ^(^uint(0) >> 1)

// twistSG alternates between values near zero and near the all-ones word,
// which hits both ends of every block.
type twistSG struct {
	cur uint
}

func (g *twistSG) Next() uint {
	if (g.cur & topBit) == 0 {
		g.cur = ^g.cur - 1
	} else {
		g.cur = ^g.cur + 1
	}
	return g.cur
}

func (g *twistSG) Reset() {
	g.cur = 0
}
func (g *twistSG) Seed(value uint) {
	g.cur = value
}
