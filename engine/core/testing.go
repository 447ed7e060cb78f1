package core

// SeqSource is a deterministic random source that replays Values in a loop.
// An empty SeqSource always returns 0.
type SeqSource struct {
	Values []float64
	i      int
}

func NewSeqSource(values ...float64) *SeqSource {
	return &SeqSource{Values: values}
}

func (s *SeqSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.i%len(s.Values)]
	s.i++
	return v
}
