package chromaprint

import (
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Segment describes a stretch of two fingerprints that match at a fixed
// alignment. Offsets and length are in fingerprint items; Duration converts
// the length into seconds for a given configuration.
type Segment struct {
	OffsetA int
	OffsetB int
	Length  int
	Score   float64
}

// StartA returns the first matched item index in the first fingerprint.
func (s Segment) StartA() int { return s.OffsetA }

// EndA returns the item index one past the match in the first fingerprint.
func (s Segment) EndA() int { return s.OffsetA + s.Length }

// StartB returns the first matched item index in the second fingerprint.
func (s Segment) StartB() int { return s.OffsetB }

// EndB returns the item index one past the match in the second fingerprint.
func (s Segment) EndB() int { return s.OffsetB + s.Length }

// Duration returns the segment length in seconds.
func (s Segment) Duration(cfg *Configuration) float64 {
	return float64(s.Length) * cfg.ItemDuration()
}

// TimeA returns the segment start position in seconds within the first
// fingerprint's source audio.
func (s Segment) TimeA(cfg *Configuration) float64 {
	return float64(s.OffsetA) * cfg.ItemDuration()
}

// TimeB returns the segment start position in seconds within the second
// fingerprint's source audio.
func (s Segment) TimeB(cfg *Configuration) float64 {
	return float64(s.OffsetB) * cfg.ItemDuration()
}

// offsetDelta is the alignment an aligned pair (i in a, j in b) implies.
func (s Segment) offsetDelta() int { return s.OffsetA - s.OffsetB }

// MatchFingerprints locates matching stretches of two raw fingerprints.
// Every alignment of the two sequences is scanned; stretches whose smoothed
// per-item bit error stays under the configured threshold become segments.
// Overlapping detections collapse to the strongest one and detections at
// nearly identical alignments merge. Segments come back ordered by their
// position in the first fingerprint.
func MatchFingerprints(a, b []uint32, cfg *Configuration) []Segment {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	var candidates []Segment
	errBuf := make([]float64, 0, min(len(a), len(b)))
	smoothBuf := make([]float64, 0, cap(errBuf))

	for delta := -(len(b) - 1); delta < len(a); delta++ {
		startA := max(0, delta)
		endA := min(len(a), len(b)+delta)
		overlap := endA - startA
		if overlap <= 0 {
			continue
		}

		errs := errBuf[:0]
		for i := startA; i < endA; i++ {
			errs = append(errs, float64(bits.OnesCount32(a[i]^b[i-delta])))
		}
		smoothed := movingAverage(errs, cfg.matchFilterWindow, smoothBuf[:0])
		candidates = appendRuns(candidates, smoothed, startA, delta, len(a), len(b), cfg)
	}

	kept := suppressOverlaps(candidates)
	merged := mergeAdjacent(kept, cfg)

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].OffsetA != merged[j].OffsetA {
			return merged[i].OffsetA < merged[j].OffsetA
		}
		return merged[i].OffsetB < merged[j].OffsetB
	})
	return merged
}

// appendRuns extracts below-threshold runs from one alignment's smoothed
// error curve and appends them as candidate segments.
func appendRuns(dst []Segment, smoothed []float64, startA, delta, lenA, lenB int, cfg *Configuration) []Segment {
	fullOverlap := min(lenA, lenB)
	runStart := -1
	for i := 0; i <= len(smoothed); i++ {
		inRun := i < len(smoothed) && smoothed[i] < cfg.matchThreshold
		if inRun && runStart < 0 {
			runStart = i
		}
		if !inRun && runStart >= 0 {
			runLen := i - runStart
			// Short runs are noise unless the run is the whole shared
			// stretch of the two fingerprints.
			if runLen >= cfg.minMatchLength || runLen == fullOverlap {
				mean := stat.Mean(smoothed[runStart:i], nil)
				dst = append(dst, Segment{
					OffsetA: startA + runStart,
					OffsetB: startA + runStart - delta,
					Length:  runLen,
					Score:   1.0 - mean/32.0,
				})
			}
			runStart = -1
		}
	}
	return dst
}

// suppressOverlaps keeps the strongest segment among any group that covers
// the same material in both fingerprints, strongest first by score, then by
// length, then by position.
func suppressOverlaps(candidates []Segment) []Segment {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Length != candidates[j].Length {
			return candidates[i].Length > candidates[j].Length
		}
		if candidates[i].OffsetA != candidates[j].OffsetA {
			return candidates[i].OffsetA < candidates[j].OffsetA
		}
		return candidates[i].OffsetB < candidates[j].OffsetB
	})

	kept := make([]Segment, 0, len(candidates))
	for _, c := range candidates {
		suppressed := false
		for _, k := range kept {
			if intervalsOverlap(c.StartA(), c.EndA(), k.StartA(), k.EndA()) &&
				intervalsOverlap(c.StartB(), c.EndB(), k.StartB(), k.EndB()) {
				suppressed = true
				break
			}
		}
		if !suppressed {
			kept = append(kept, c)
		}
	}
	return kept
}

// mergeAdjacent joins segments at nearly identical alignments separated by
// small gaps. The merged score is the length-weighted mean of the parts.
func mergeAdjacent(segments []Segment, cfg *Configuration) []Segment {
	if len(segments) < 2 {
		return segments
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].OffsetA != segments[j].OffsetA {
			return segments[i].OffsetA < segments[j].OffsetA
		}
		return segments[i].OffsetB < segments[j].OffsetB
	})

	merged := segments[:1]
	for _, s := range segments[1:] {
		last := &merged[len(merged)-1]
		drift := absInt(s.offsetDelta() - last.offsetDelta())
		gapA := s.StartA() - last.EndA()
		if drift <= cfg.matchDriftTolerance && gapA <= cfg.matchFilterWindow {
			endA := max(last.EndA(), s.EndA())
			total := last.Length + s.Length
			last.Score = (last.Score*float64(last.Length) + s.Score*float64(s.Length)) / float64(total)
			last.OffsetA = min(last.OffsetA, s.OffsetA)
			last.OffsetB = min(last.OffsetB, s.OffsetB)
			last.Length = endA - last.OffsetA
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// movingAverage smooths values with a centered window, clamping the window
// at the edges.
func movingAverage(values []float64, window int, dst []float64) []float64 {
	if window < 1 {
		window = 1
	}
	half := window / 2
	for i := range values {
		lo := max(0, i-half)
		hi := min(len(values), i+half+1)
		dst = append(dst, stat.Mean(values[lo:hi], nil))
	}
	return dst
}

func intervalsOverlap(aLo, aHi, bLo, bHi int) bool {
	return aLo < bHi && bLo < aHi
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
