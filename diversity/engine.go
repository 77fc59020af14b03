// Package diversity computes lexical-diversity metrics over an ordered sequence of
// already normalized word tokens: the Type-Token Ratio family, moving and segmental
// TTR, MTLD and its moving-average variant, HD-D, and the Simpson and hapax indices.
//
// The engine operates on token identity only. Case folding, lemmatization and
// tokenization are decided by the caller. Every metric is a pure function of the
// sequence and the Config; an Engine holds no mutable state and is safe for
// concurrent use unless Config.RandSource is set.
package diversity

// Engine evaluates diversity metrics with a fixed Config.
type Engine struct {
	cfg Config
}

func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Default returns an Engine using DefaultConfig.
func Default() *Engine {
	return &Engine{cfg: DefaultConfig()}
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) TTR(tokens []string) float64  { return ttr(NewProfile(tokens)) }
func (e *Engine) RTTR(tokens []string) float64 { return rttr(NewProfile(tokens)) }
func (e *Engine) CTTR(tokens []string) float64 { return cttr(NewProfile(tokens)) }

func (e *Engine) HTTR(tokens []string) float64 { return httr(NewProfile(tokens), e.cfg) }
func (e *Engine) STTR(tokens []string) float64 { return sttr(NewProfile(tokens), e.cfg) }
func (e *Engine) MTTR(tokens []string) float64 { return mttr(NewProfile(tokens), e.cfg) }
func (e *Engine) DTTR(tokens []string) float64 { return dttr(NewProfile(tokens), e.cfg) }

// MATTR falls back to TTR when the sequence fits in one window.
func (e *Engine) MATTR(tokens []string) float64 {
	return mattr(tokens, NewProfile(tokens), e.cfg)
}

// MSTTR falls back to TTR when the sequence fits in one segment.
func (e *Engine) MSTTR(tokens []string) float64 {
	return msttr(tokens, NewProfile(tokens), e.cfg)
}

// MTLD returns an *InsufficientDataError for sequences shorter than
// Config.MTLDMinLength.
func (e *Engine) MTLD(tokens []string) (float64, error) {
	return mtld(tokens, e.cfg)
}

// MAMTLD returns an *InsufficientDataError for sequences shorter than
// Config.MTLDMinLength.
func (e *Engine) MAMTLD(tokens []string) (float64, error) {
	return mamtld(tokens, e.cfg)
}

// HDD returns Undefined when the sequence is shorter than Config.HDDSampleSize.
func (e *Engine) HDD(tokens []string) float64 {
	return hdd(NewProfile(tokens), e.cfg)
}

// SimpsonIndex returns Undefined when no token repeats.
func (e *Engine) SimpsonIndex(tokens []string) float64 {
	return simpsonIndex(NewProfile(tokens))
}

// HapaxIndex returns Undefined when every token occurs exactly once.
func (e *Engine) HapaxIndex(tokens []string) float64 {
	return hapaxIndex(NewProfile(tokens), e.cfg)
}
