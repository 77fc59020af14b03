package diversity

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(level, stage, message, detail string) {
	l.lines = append(l.lines, level+" "+stage+" "+message+" "+detail)
}

func TestComputeFullReport(t *testing.T) {
	report, err := Default().Compute(cyclic(200, 20), Options{})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(report.Results) != 14 {
		t.Fatalf("expected 14 metrics, got %d", len(report.Results))
	}
	for i, name := range Names() {
		if report.Results[i].Name != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, report.Results[i].Name)
		}
	}
	if report.Tokens != 200 || report.Types != 20 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if v, ok := report.Get(NameTTR); !ok || v != 0.1 {
		t.Fatalf("expected ttr 0.1, got %v (%v)", v, ok)
	}
}

func TestComputeSubsetKeepsCallerOrder(t *testing.T) {
	report, err := Default().Compute(riddle, Options{Metrics: []string{NameSimpsonIndex, NameTTR, NameSimpsonIndex}})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(report.Results) != 2 || report.Results[0].Name != NameSimpsonIndex || report.Results[1].Name != NameTTR {
		t.Fatalf("unexpected subset: %+v", report.Results)
	}
}

func TestComputeUnknownMetric(t *testing.T) {
	_, err := Default().Compute(riddle, Options{Metrics: []string{"yule_k"}})
	if !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected unknown metric error, got %v", err)
	}
}

func TestComputeEmptySequencePolicies(t *testing.T) {
	e := Default()
	_, err := e.Compute(nil, Options{})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected fail-fast error, got %v", err)
	}
	if !strings.Contains(err.Error(), NameMTLD) {
		t.Fatalf("expected error to name mtld, got %v", err)
	}

	logger := &recordingLogger{}
	report, err := e.Compute(nil, Options{Policy: SkipUndefined, Logger: logger})
	if err != nil {
		t.Fatalf("skip policy: %v", err)
	}
	m := report.Map()
	if m[NameTTR] != 0 || m[NameRTTR] != 0 {
		t.Fatalf("expected zero ratios, got %v", m)
	}
	if m[NameMTLD] != Undefined || m[NameMAMTLD] != Undefined || m[NameHDD] != Undefined {
		t.Fatalf("expected undefined mtld/mamtld/hdd, got %v", m)
	}
	skipped := report.Skipped()
	if len(skipped) != 2 || skipped[0] != NameMTLD || skipped[1] != NameMAMTLD {
		t.Fatalf("unexpected skipped metrics: %v", skipped)
	}
	warns := 0
	for _, line := range logger.lines {
		if strings.HasPrefix(line, "WARN") {
			warns++
		}
	}
	if warns != 2 {
		t.Fatalf("expected 2 warnings, got %v", logger.lines)
	}

	// Naming a fail-fast metric explicitly makes it mandatory.
	_, err = e.Compute(riddle[:4], Options{Policy: SkipUndefined, Metrics: []string{NameTTR, NameMTLD}})
	if !IsInsufficientData(err) {
		t.Fatalf("expected explicit mtld to abort, got %v", err)
	}
}

func TestComputeIdempotentAndWorkerIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MAMTLDTrials = 10
	cfg.MAMTLDWindow = 40
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	tokens := append(cyclic(120, 17), cyclic(90, 31)...)

	first, err := e.Compute(tokens, Options{})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := e.Compute(tokens, Options{})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	parallel, err := e.Compute(tokens, Options{Workers: 4})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for i := range first.Results {
		a, b, c := first.Results[i], second.Results[i], parallel.Results[i]
		if a != b || a != c {
			t.Fatalf("results differ for %s: %v %v %v", a.Name, a.Value, b.Value, c.Value)
		}
	}
}

func TestComputeParallelFailFast(t *testing.T) {
	_, err := Default().Compute(riddle[:5], Options{Workers: 3})
	if !IsInsufficientData(err) {
		t.Fatalf("expected insufficient data, got %v", err)
	}
}

func TestReportJSONKeepsOrder(t *testing.T) {
	report, err := Default().Compute(riddle, Options{Metrics: []string{NameHDD, NameTTR, NameSimpsonIndex}})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	raw, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"hdd":-1,"ttr":0.7333333333333333,"simpson_index":21}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}

func TestCatalogue(t *testing.T) {
	names := Names()
	want := []string{"ttr", "rttr", "cttr", "httr", "sttr", "mttr", "dttr", "mattr", "msttr", "mtld", "mamtld", "hdd", "simpson_index", "hapax_index"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected catalogue: %v", names)
	}
	for _, name := range names {
		if d, ok := Describe(name); !ok || d == "" {
			t.Fatalf("missing description for %s", name)
		}
	}
	if !IsFailFast(NameMTLD) || !IsFailFast(NameMAMTLD) || IsFailFast(NameHDD) || IsFailFast("nope") {
		t.Fatalf("unexpected fail-fast subset")
	}
}
