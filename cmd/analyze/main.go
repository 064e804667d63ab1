package main

// Score a resume from the command line:
//   go run ./cmd/analyze -jd-file job.txt resume.pdf

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"resume-match/internal/analyzer"
	"resume-match/internal/analyzer/tables"
	"resume-match/internal/extract"
)

func main() {
	jd := flag.String("jd", "", "job description text")
	jdFile := flag.String("jd-file", "", "path to a job description file")
	tablesFile := flag.String("tables", "", "path to a scoring tables file (defaults to embedded)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [flags] <resume file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	report, err := run(flag.Arg(0), *jd, *jdFile, *tablesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func run(resumePath, jd, jdFile, tablesFile string) (analyzer.ScoreReport, error) {
	jobDescription := jd
	if jdFile != "" {
		data, err := os.ReadFile(jdFile)
		if err != nil {
			return analyzer.ScoreReport{}, fmt.Errorf("read job description: %w", err)
		}
		jobDescription = string(data)
	}

	var (
		tbl *tables.Tables
		err error
	)
	if tablesFile != "" {
		tbl, err = tables.LoadFile(tablesFile)
	} else {
		tbl, err = tables.Load()
	}
	if err != nil {
		return analyzer.ScoreReport{}, fmt.Errorf("load tables: %w", err)
	}

	data, err := os.ReadFile(resumePath)
	if err != nil {
		return analyzer.ScoreReport{}, fmt.Errorf("read resume: %w", err)
	}

	fileName := filepath.Base(resumePath)
	text, err := extract.ExtractTextFromBytes(context.Background(), data, "", fileName)
	if err != nil {
		return analyzer.ScoreReport{}, fmt.Errorf("extract text: %w", err)
	}

	engine := analyzer.New(tbl)
	return engine.Analyze(text, jobDescription), nil
}
