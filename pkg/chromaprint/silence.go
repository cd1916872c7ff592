package chromaprint

// silenceWindow is the length of the moving average used to decide where
// audible content begins: 55 samples is 5 ms at the processing rate.
const silenceWindow = 55

// silenceRemover drops leading input while the short-window moving average
// of sample magnitudes stays at or below the threshold. Once audio starts
// it passes everything through, so mid-stream pauses are preserved.
type silenceRemover struct {
	threshold int
	average   movingAverageInt
	started   bool
}

func newSilenceRemover(threshold int) *silenceRemover {
	return &silenceRemover{
		threshold: threshold,
		average:   newMovingAverageInt(silenceWindow),
	}
}

// process returns the suffix of samples that should be forwarded. It never
// allocates; the returned slice aliases the input.
func (s *silenceRemover) process(samples []int16) []int16 {
	if s.started {
		return samples
	}
	for i, sample := range samples {
		v := int(sample)
		if v < 0 {
			v = -v
		}
		s.average.add(v)
		if s.average.value() > s.threshold {
			s.started = true
			return samples[i:]
		}
	}
	return nil
}

func (s *silenceRemover) reset() {
	s.started = false
	s.average = newMovingAverageInt(silenceWindow)
}

// movingAverageInt is a fixed-window simple moving average over ints.
type movingAverageInt struct {
	values []int
	pos    int
	count  int
	sum    int
}

func newMovingAverageInt(window int) movingAverageInt {
	return movingAverageInt{values: make([]int, window)}
}

func (m *movingAverageInt) add(value int) {
	if m.count == len(m.values) {
		m.sum -= m.values[m.pos]
	} else {
		m.count++
	}
	m.values[m.pos] = value
	m.sum += value
	m.pos = (m.pos + 1) % len(m.values)
}

func (m *movingAverageInt) value() int {
	if m.count == 0 {
		return 0
	}
	return m.sum / m.count
}
