package diversity

import "fmt"

const (
	NameTTR          = "ttr"
	NameRTTR         = "rttr"
	NameCTTR         = "cttr"
	NameHTTR         = "httr"
	NameSTTR         = "sttr"
	NameMTTR         = "mttr"
	NameDTTR         = "dttr"
	NameMATTR        = "mattr"
	NameMSTTR        = "msttr"
	NameMTLD         = "mtld"
	NameMAMTLD       = "mamtld"
	NameHDD          = "hdd"
	NameSimpsonIndex = "simpson_index"
	NameHapaxIndex   = "hapax_index"
)

// sample is the input of one metric evaluation: the token sequence and its profile,
// computed once per report.
type sample struct {
	tokens  []string
	profile *Profile
}

type metric struct {
	name        string
	description string
	// failFast metrics return ErrInsufficientData on short input. The rest always
	// produce a value, possibly Undefined.
	failFast bool
	compute  func(s sample, cfg Config) (float64, error)
}

func defined(fn func(s sample, cfg Config) float64) func(sample, Config) (float64, error) {
	return func(s sample, cfg Config) (float64, error) {
		return fn(s, cfg), nil
	}
}

var catalogue = []metric{
	{NameTTR, "Метрика Type-Token Ratio (TTR)", false, defined(func(s sample, _ Config) float64 { return ttr(s.profile) })},
	{NameRTTR, "Метрика Root Type-Token Ratio (RTTR)", false, defined(func(s sample, _ Config) float64 { return rttr(s.profile) })},
	{NameCTTR, "Метрика Corrected Type-Token Ratio (CTTR)", false, defined(func(s sample, _ Config) float64 { return cttr(s.profile) })},
	{NameHTTR, "Метрика Herdan Type-Token Ratio (HTTR)", false, defined(func(s sample, cfg Config) float64 { return httr(s.profile, cfg) })},
	{NameSTTR, "Метрика Summer Type-Token Ratio (STTR)", false, defined(func(s sample, cfg Config) float64 { return sttr(s.profile, cfg) })},
	{NameMTTR, "Метрика Mass Type-Token Ratio (MTTR)", false, defined(func(s sample, cfg Config) float64 { return mttr(s.profile, cfg) })},
	{NameDTTR, "Метрика Dugast Type-Token Ratio (DTTR)", false, defined(func(s sample, cfg Config) float64 { return dttr(s.profile, cfg) })},
	{NameMATTR, "Метрика Moving Average Type-Token Ratio (MATTR)", false, defined(func(s sample, cfg Config) float64 { return mattr(s.tokens, s.profile, cfg) })},
	{NameMSTTR, "Метрика Mean Segmental Type-Token Ratio (MSTTR)", false, defined(func(s sample, cfg Config) float64 { return msttr(s.tokens, s.profile, cfg) })},
	{NameMTLD, "Метрика Measure of Textual Lexical Diversity (MTLD)", true, func(s sample, cfg Config) (float64, error) { return mtld(s.tokens, cfg) }},
	{NameMAMTLD, "Метрика Moving Average Measure of Textual Lexical Diversity (MAMTLD)", true, func(s sample, cfg Config) (float64, error) { return mamtld(s.tokens, cfg) }},
	{NameHDD, "Метрика Hypergeometric Distribution D (HD-D)", false, defined(func(s sample, cfg Config) float64 { return hdd(s.profile, cfg) })},
	{NameSimpsonIndex, "Индекс Симпсона", false, defined(func(s sample, _ Config) float64 { return simpsonIndex(s.profile) })},
	{NameHapaxIndex, "Гапакс-индекс", false, defined(func(s sample, cfg Config) float64 { return hapaxIndex(s.profile, cfg) })},
}

var catalogueIndex = func() map[string]int {
	idx := make(map[string]int, len(catalogue))
	for i, m := range catalogue {
		idx[m.name] = i
	}
	return idx
}()

// Names returns the canonical metric names in report order.
func Names() []string {
	out := make([]string, len(catalogue))
	for i, m := range catalogue {
		out[i] = m.name
	}
	return out
}

// Describe returns the human-readable title of a metric.
func Describe(name string) (string, bool) {
	i, ok := catalogueIndex[name]
	if !ok {
		return "", false
	}
	return catalogue[i].description, true
}

// IsFailFast reports whether a metric returns ErrInsufficientData on short input
// instead of a value.
func IsFailFast(name string) bool {
	i, ok := catalogueIndex[name]
	return ok && catalogue[i].failFast
}

func lookup(names []string) ([]metric, error) {
	if len(names) == 0 {
		return catalogue, nil
	}
	out := make([]metric, 0, len(names))
	seen := map[string]struct{}{}
	for _, name := range names {
		i, ok := catalogueIndex[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, catalogue[i])
	}
	return out, nil
}
