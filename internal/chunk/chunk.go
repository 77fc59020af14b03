package chunk

// Segment is a half-open token range [StartToken, EndToken) over a token sequence.
type Segment struct {
	Index      int
	StartToken int
	EndToken   int
}

func (s Segment) Len() int {
	return s.EndToken - s.StartToken
}

// SlidingWindow returns every full window of segmentTokens tokens over a sequence of
// total tokens, advancing by step. A trailing window shorter than segmentTokens is
// never produced.
func SlidingWindow(total, segmentTokens, step int) []Segment {
	if segmentTokens <= 0 || total < segmentTokens {
		return nil
	}
	if step <= 0 {
		step = 1
	}

	segments := make([]Segment, 0, (total-segmentTokens)/step+1)
	for start := 0; start+segmentTokens <= total; start += step {
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: start,
			EndToken:   start + segmentTokens,
		})
	}
	return segments
}

// Consecutive splits total tokens into floor(total/segmentTokens) non-overlapping
// segments. The trailing partial segment is dropped.
func Consecutive(total, segmentTokens int) []Segment {
	return SlidingWindow(total, segmentTokens, segmentTokens)
}
