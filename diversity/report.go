package diversity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"rutstats/internal/pipeline"
)

// Policy decides what happens when a fail-fast metric cannot be computed.
type Policy int

const (
	// FailFast aborts the report with the metric's error.
	FailFast Policy = iota
	// SkipUndefined records Undefined for the metric and keeps going. A metric the
	// caller named explicitly in Options.Metrics still aborts the report.
	SkipUndefined
)

type Logger interface {
	Log(level, stage, message, detail string)
}

type Options struct {
	// Metrics restricts the report to the named metrics, in the given order. Empty
	// means the full catalogue.
	Metrics []string
	Policy  Policy
	// Workers > 1 evaluates metrics concurrently. Results do not depend on it.
	Workers int
	Logger  Logger
}

type Result struct {
	Name  string
	Value float64
	// Err is set when the metric was skipped under SkipUndefined. Value is Undefined.
	Err error
}

// Report is the ordered outcome of one Compute call.
type Report struct {
	Tokens  int
	Types   int
	Results []Result
}

// Compute evaluates the requested metrics over tokens. The frequency profile is built
// once and shared read-only by every metric.
func (e *Engine) Compute(tokens []string, opts Options) (*Report, error) {
	metrics, err := lookup(opts.Metrics)
	if err != nil {
		return nil, fmt.Errorf("diversity: %w", err)
	}
	explicit := len(opts.Metrics) > 0

	s := sample{tokens: tokens, profile: NewProfile(tokens)}
	report := &Report{
		Tokens:  s.profile.N,
		Types:   s.profile.V,
		Results: make([]Result, len(metrics)),
	}
	if opts.Logger != nil {
		opts.Logger.Log("ANALYSIS", "diversity", "diversity report started", fmt.Sprintf("tokens=%d types=%d metrics=%d", report.Tokens, report.Types, len(metrics)))
	}

	eval := func(i int) error {
		m := metrics[i]
		v, err := m.compute(s, e.cfg)
		report.Results[i] = Result{Name: m.name, Value: v, Err: err}
		return err
	}
	if opts.Workers > 1 {
		values, errs := pipeline.Map(metrics, opts.Workers, func(m metric) (float64, error) {
			return m.compute(s, e.cfg)
		})
		if i, err := pipeline.FirstError(errs); err != nil && (opts.Policy == FailFast || explicit) {
			return nil, fmt.Errorf("diversity: %s: %w", metrics[i].name, err)
		}
		for i, m := range metrics {
			report.Results[i] = Result{Name: m.name, Value: values[i], Err: errs[i]}
		}
	} else {
		for i := range metrics {
			if err := eval(i); err != nil && (opts.Policy == FailFast || explicit) {
				break
			}
		}
	}

	for i := range report.Results {
		r := &report.Results[i]
		if r.Err == nil {
			continue
		}
		if opts.Policy == FailFast || explicit {
			return nil, fmt.Errorf("diversity: %s: %w", r.Name, r.Err)
		}
		if opts.Logger != nil {
			opts.Logger.Log("WARN", "diversity", "metric skipped", fmt.Sprintf("metric=%s err=%v", r.Name, r.Err))
		}
		r.Value = Undefined
	}
	return report, nil
}

// Get returns the value of a metric present in the report.
func (r *Report) Get(name string) (float64, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res.Value, true
		}
	}
	return 0, false
}

func (r *Report) Map() map[string]float64 {
	out := make(map[string]float64, len(r.Results))
	for _, res := range r.Results {
		out[res.Name] = res.Value
	}
	return out
}

// Skipped lists the metrics recorded as Undefined because they failed.
func (r *Report) Skipped() []string {
	var out []string
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res.Name)
		}
	}
	return out
}

// MarshalJSON encodes the report as a JSON object keyed by metric name, preserving
// report order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, res := range r.Results {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(res.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(res.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", res.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// IsInsufficientData reports whether err was caused by a too short sequence.
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
