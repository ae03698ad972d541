package dice

import "sync"

// FixedSource replays a fixed list of die faces, cycling when exhausted.
// A face larger than the die being rolled wraps around, so the same
// source can drive any die size.
type FixedSource struct {
	mu    sync.Mutex
	faces []int
	next  int
}

// NewFixedSource creates a source that yields faces in order
func NewFixedSource(faces ...int) *FixedSource {
	if len(faces) == 0 {
		faces = []int{1}
	}
	return &FixedSource{faces: faces}
}

// Intn returns the next face minus one, reduced modulo n
func (s *FixedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	face := s.faces[s.next%len(s.faces)]
	s.next++

	v := (face - 1) % n
	if v < 0 {
		v += n
	}
	return v
}
