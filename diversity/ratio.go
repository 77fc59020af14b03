package diversity

import "math"

// Closed-form Type-Token Ratio family. All of them degrade to 0 instead of failing when
// the sample is too small for the formula.

func ttr(p *Profile) float64 {
	if p.N == 0 {
		return 0
	}
	return float64(p.V) / float64(p.N)
}

func rttr(p *Profile) float64 {
	if p.N == 0 {
		return 0
	}
	return float64(p.V) / math.Sqrt(float64(p.N))
}

func cttr(p *Profile) float64 {
	if p.N == 0 {
		return 0
	}
	return float64(p.V) / math.Sqrt(2*float64(p.N))
}

// httr is Herdan's log(V)/log(N).
func httr(p *Profile, cfg Config) float64 {
	if p.N <= 1 {
		return 0
	}
	return cfg.log(float64(p.V)) / cfg.log(float64(p.N))
}

// sttr is Summer's log(log(V))/log(log(N)). Both V and N must exceed the log base so
// that the inner logarithms are above 1.
func sttr(p *Profile, cfg Config) float64 {
	if float64(p.V) <= cfg.LogBase || float64(p.N) <= cfg.LogBase {
		return 0
	}
	return cfg.log(cfg.log(float64(p.V))) / cfg.log(cfg.log(float64(p.N)))
}

// mttr is Maas' (log(N)-log(V))/log(N)^2.
func mttr(p *Profile, cfg Config) float64 {
	if p.N <= 1 {
		return 0
	}
	logN := cfg.log(float64(p.N))
	return (logN - cfg.log(float64(p.V))) / (logN * logN)
}

// dttr is Dugast's log(N)^2/(log(N)-log(V)).
func dttr(p *Profile, cfg Config) float64 {
	if p.N == p.V {
		return 0
	}
	logN := cfg.log(float64(p.N))
	return logN * logN / (logN - cfg.log(float64(p.V)))
}
