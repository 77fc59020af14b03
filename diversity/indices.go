package diversity

// simpsonIndex is N(N-1) divided by the number of ordered pairs of equal tokens, the
// inverse of Simpson's repeat probability. It is undefined without repeated tokens.
func simpsonIndex(p *Profile) float64 {
	if p.N < 2 {
		return Undefined
	}
	pairs := 0.0
	for _, bin := range p.Spectrum {
		c := float64(bin.Count)
		pairs += float64(bin.Types) * c * (c - 1)
	}
	if pairs == 0 {
		return Undefined
	}
	n := float64(p.N)
	return n * (n - 1) / pairs
}

// hapaxIndex is Honoré's statistic 100*log(N)/(1 - V1/V). It is undefined when every
// token is a hapax.
func hapaxIndex(p *Profile, cfg Config) float64 {
	if p.N == 0 || p.Hapaxes == p.V {
		return Undefined
	}
	return 100 * cfg.log(float64(p.N)) / (1 - float64(p.Hapaxes)/float64(p.V))
}
