package diversity

import "gonum.org/v1/gonum/stat"

// mtld is the bidirectional Measure of Textual Lexical Diversity: the mean of the
// forward and backward factor lengths.
func mtld(tokens []string, cfg Config) (float64, error) {
	if len(tokens) < cfg.MTLDMinLength {
		return 0, &InsufficientDataError{Metric: NameMTLD, Need: cfg.MTLDMinLength, Got: len(tokens)}
	}
	forward := mtldFactorLength(tokens, cfg)
	backward := mtldFactorLength(reversed(tokens), cfg)
	return (forward + backward) / 2, nil
}

// mtldFactorLength scans tokens once, closing a factor whenever the running TTR drops
// to or below the threshold after at least MTLDFactorMinLength tokens. The unfinished
// tail contributes the fraction of the way its TTR has fallen towards the threshold.
func mtldFactorLength(tokens []string, cfg Config) float64 {
	seen := map[string]struct{}{}
	factors := 0.0
	start := 0
	for i, tok := range tokens {
		seen[tok] = struct{}{}
		length := i - start + 1
		if length >= cfg.MTLDFactorMinLength && float64(len(seen))/float64(length) <= cfg.MTLDThreshold {
			factors++
			start = i + 1
			clear(seen)
		}
	}
	if rest := len(tokens) - start; rest > 0 {
		factors += (1 - float64(len(seen))/float64(rest)) / (1 - cfg.MTLDThreshold)
	}
	if factors == 0 {
		return 0
	}
	return float64(len(tokens)) / factors
}

// mamtld is the moving-average MTLD. By default a factor is grown from every start
// position and the mean length of the factors that close is averaged over both
// directions. With cfg.MAMTLDTrials > 0 it is the mean MTLD of randomly placed
// windows of cfg.MAMTLDWindow tokens.
//
// The moving average grows a factor from every start position, so it costs O(N²) on
// diverse text where factors rarely close. MAMTLDTrials bounds the cost to
// trials × window tokens.
func mamtld(tokens []string, cfg Config) (float64, error) {
	if len(tokens) < cfg.MTLDMinLength {
		return 0, &InsufficientDataError{Metric: NameMAMTLD, Need: cfg.MTLDMinLength, Got: len(tokens)}
	}
	if cfg.MAMTLDTrials > 0 {
		return resampledMTLD(tokens, cfg)
	}
	forward := movingFactorLength(tokens, cfg)
	backward := movingFactorLength(reversed(tokens), cfg)
	return (forward + backward) / 2, nil
}

// movingFactorLength returns 1 when no factor closes from any start position.
func movingFactorLength(tokens []string, cfg Config) float64 {
	seen := map[string]struct{}{}
	closed, total := 0, 0
	for start := range tokens {
		clear(seen)
		for i := start; i < len(tokens); i++ {
			seen[tokens[i]] = struct{}{}
			length := i - start + 1
			if length >= cfg.MTLDFactorMinLength && float64(len(seen))/float64(length) <= cfg.MTLDThreshold {
				closed++
				total += length
				break
			}
		}
	}
	if closed == 0 {
		return 1
	}
	return float64(total) / float64(closed)
}

func resampledMTLD(tokens []string, cfg Config) (float64, error) {
	window := min(cfg.MAMTLDWindow, len(tokens))
	rng := cfg.newRand()
	values := make([]float64, cfg.MAMTLDTrials)
	for i := range values {
		start := rng.IntN(len(tokens) - window + 1)
		v, err := mtld(tokens[start:start+window], cfg)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return stat.Mean(values, nil), nil
}
