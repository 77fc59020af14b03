package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"rutstats/diversity"
	"rutstats/internal/config"
)

type stdLogger struct {
	l     *log.Logger
	debug bool
}

func (s stdLogger) Log(level, stage, message, detail string) {
	if level == "ANALYSIS" && !s.debug {
		return
	}
	line := fmt.Sprintf("[%s] [%s] %s", level, stage, message)
	if strings.TrimSpace(detail) != "" {
		line += " | " + detail
	}
	s.l.Println(line)
}

func main() {
	envFile := flag.String("env", "", "optional .env file with RUTS_* settings")
	jsonOut := flag.Bool("json", false, "print the report as JSON")
	metrics := flag.String("metrics", "", "comma-separated metric names (default: all)")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		log.Fatalf("configuration failed: %v", err)
	}
	if *jsonOut {
		cfg.Output = config.OutputJSON
	}
	if *metrics != "" {
		cfg.Metrics = cfg.Metrics[:0]
		for _, name := range strings.Split(*metrics, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Metrics = append(cfg.Metrics, name)
			}
		}
	}

	logger := stdLogger{l: log.New(os.Stderr, "rutsdiv: ", log.Ltime), debug: cfg.LogLevel == "debug"}

	tokens, err := readTokens(flag.Args())
	if err != nil {
		log.Fatalf("read tokens: %v", err)
	}

	engine, err := diversity.New(cfg.Diversity)
	if err != nil {
		log.Fatalf("diversity engine: %v", err)
	}
	report, err := engine.Compute(tokens, cfg.Options(logger))
	if err != nil {
		log.Fatalf("compute report: %v", err)
	}

	switch cfg.Output {
	case config.OutputJSON:
		raw, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("marshal report: %v", err)
		}
		fmt.Println(string(raw))
	default:
		if err := diversity.WriteTable(os.Stdout, report); err != nil {
			log.Fatalf("write report: %v", err)
		}
	}
}

// readTokens reads whitespace-separated, already normalized tokens from the named
// file or from stdin.
func readTokens(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return scanTokens(r)
}

func scanTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
