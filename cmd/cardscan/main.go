package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/ekaraca/cardscan/internal/common"
	"github.com/ekaraca/cardscan/internal/llm"
	"github.com/ekaraca/cardscan/internal/llm/openai"
	"github.com/ekaraca/cardscan/internal/ocr"
	"github.com/ekaraca/cardscan/internal/pipeline"
	"github.com/ekaraca/cardscan/internal/repository"
)

// cardscan runs one scan over an OCR text dump and prints the outcome.
// Usage: cardscan <ocr-text-file> [extraction-payload-file]
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "cardscan <ocr-text-file> [extraction-payload-file]")
		os.Exit(2)
	}

	rawText, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read ocr text", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	var rawExtraction string
	if len(os.Args) == 3 {
		b, err := os.ReadFile(os.Args[2])
		if err != nil {
			logger.Error("read extraction payload", "path", os.Args[2], "error", err)
			os.Exit(1)
		}
		rawExtraction = string(b)
	}

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := repository.OpenLocal(ctx, cfg.Local.SQLitePath, logger)
	if err != nil {
		logger.Error("open local store", "path", cfg.Local.SQLitePath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("close local store", "error", cerr)
		}
	}()

	var extractor llm.Extractor
	if rawExtraction == "" && cfg.LLM.APIKey != "" {
		extractor = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	proc := pipeline.NewProcessor(logger, extractor, store)
	outcome, err := proc.Scan(ctx, pipeline.Input{
		Payload:       ocr.FromParts(string(rawText), nil),
		RawExtraction: rawExtraction,
	})
	if err != nil {
		logger.Error("scan failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		logger.Error("encode outcome", "error", err)
		os.Exit(1)
	}
}
