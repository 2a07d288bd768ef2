package engine

import "math/rand"

// Source supplies the kind of each newly generated piece.
// Engines own their source; sources are not safe for concurrent use.
type Source interface {
	Next() Kind
}

// UniformSource picks every kind independently with equal probability.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a uniform source from a seed.
func NewUniformSource(seed int64) *UniformSource {
	return &UniformSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen kind.
func (s *UniformSource) Next() Kind {
	return Kind(s.rng.Intn(int(kindCount)))
}

// BagSource deals all seven kinds in a shuffled order before reshuffling,
// so droughts are bounded: the same kind never appears three times in a row.
type BagSource struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagSource creates a 7-bag source from a seed.
func NewBagSource(seed int64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewSource(seed))}
}

// Next deals the next kind from the bag, refilling it when empty.
func (s *BagSource) Next() Kind {
	if len(s.bag) == 0 {
		s.bag = Kinds()
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	k := s.bag[0]
	s.bag = s.bag[1:]
	return k
}

// SequenceSource cycles through a fixed list of kinds.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource creates a source that repeats kinds in order.
// An empty list yields KindO forever.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		kinds = []Kind{KindO}
	}
	return &SequenceSource{kinds: append([]Kind(nil), kinds...)}
}

// Next returns the next kind of the sequence.
func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
