package main

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tokens, err := scanTokens(strings.NewReader("ног нет\nа  хожу\n\tрта\n"))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if strings.Join(tokens, "|") != "ног|нет|а|хожу|рта" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}

func TestStdLoggerFiltersAnalysis(t *testing.T) {
	var buf bytes.Buffer
	l := stdLogger{l: log.New(&buf, "", 0)}
	l.Log("ANALYSIS", "diversity", "diversity report started", "tokens=3")
	l.Log("WARN", "diversity", "metric skipped", "metric=mtld")
	if got := buf.String(); got != "[WARN] [diversity] metric skipped | metric=mtld\n" {
		t.Fatalf("unexpected log output: %q", got)
	}
}
