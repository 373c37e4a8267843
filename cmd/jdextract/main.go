// Command jdextract runs the job description pipeline against a local file
// and prints the result as JSON.
//
//	go run ./cmd/jdextract -file jd.pdf -enhance
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jd-backend/internal/bootstrap"
	"jd-backend/internal/shared/config"
)

type output struct {
	Basic    map[string]any `json:"basic"`
	Enhanced any            `json:"enhanced,omitempty"`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "jdextract: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("jdextract", flag.ContinueOnError)
	filePath := fs.String("file", "", "Path to the job description (pdf, docx, or image)")
	enhance := fs.Bool("enhance", false, "Also run the enhancement stage")
	configPath := fs.String("config", "", "Optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*filePath) == "" {
		return errors.New("-file is required")
	}
	if *configPath != "" {
		if err := os.Setenv("CONFIG_FILE", *configPath); err != nil {
			return err
		}
	}

	pipeline, err := bootstrap.BuildPipeline(config.Load())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", *filePath, err)
	}
	basic, err := pipeline.Extractor.Extract(ctx, data, filepath.Base(*filePath))
	if err != nil {
		return err
	}

	out := output{Basic: basic}
	if *enhance {
		res, err := pipeline.Enhancer.ProcessJobDescription(ctx, basic)
		if err != nil {
			return err
		}
		out.Enhanced = res
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
