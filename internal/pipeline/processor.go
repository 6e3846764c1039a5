package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/entity"
	"github.com/ekaraca/cardscan/internal/heuristic"
	"github.com/ekaraca/cardscan/internal/hints"
	"github.com/ekaraca/cardscan/internal/llm"
	"github.com/ekaraca/cardscan/internal/ocr"
	"github.com/ekaraca/cardscan/internal/repository"
)

// Processor runs the card extraction pipeline: OCR payload -> candidate
// hints -> external extraction -> repair -> schema validation -> field
// normalization -> scan result, with the heuristic-only parser as fallback.
// Every scan is fresh: no caching, no retries inside the pipeline.
type Processor struct {
	Logger    *slog.Logger
	Extractor llm.Extractor            // nil forces the heuristic path
	Jobs      repository.ScanJobRepository // nil skips audit recording
}

func NewProcessor(logger *slog.Logger, extractor llm.Extractor, jobs repository.ScanJobRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extractor: extractor, Jobs: jobs}
}

// Input is one scan attempt. RawExtraction, when non-empty, is a
// caller-provided extraction payload; otherwise the Extractor is called. If
// neither is available the heuristic path runs alone.
type Input struct {
	Payload       ocr.Payload
	RawExtraction string
}

// Outcome is everything one scan produced.
type Outcome struct {
	JobID      uuid.UUID                    `json:"job_id,omitempty"`
	Strategy   constants.ExtractionStrategy `json:"strategy"`
	Result     entity.ScanResult            `json:"result"`
	Extraction *entity.CardExtraction       `json:"extraction,omitempty"` // nil on the heuristic path
	Hints      entity.CandidateHints        `json:"hints"`
}

// Scan executes one pass of the pipeline. Structured-path failures (repair,
// schema) are not errors: they demote the scan to the heuristic strategy.
// Only audit-persistence failures surface as errors.
func (p *Processor) Scan(ctx context.Context, in Input) (*Outcome, error) {
	start := time.Now()

	raw := ocr.Normalize(in.Payload.RawText)
	h := hints.Build(raw, in.Payload.Lines)

	var jobID uuid.UUID
	if p.Jobs != nil {
		id, err := p.Jobs.Start(ctx, len(raw))
		if err != nil {
			return nil, err
		}
		jobID = id
	}

	p.Logger.Info("scan.start",
		"job_id", jobID,
		"ocr_bytes", len(raw),
		"hint_phones", len(h.Phones),
		"hint_emails", len(h.Emails),
		"hint_address_lines", len(h.AddressLines),
	)

	out := &Outcome{JobID: jobID, Hints: h}

	extraction, validated := p.structuredExtraction(ctx, jobID, raw, h, in.RawExtraction)
	if extraction != nil {
		out.Strategy = constants.StrategyStructured
		out.Extraction = extraction
		out.Result = ToScanResult(extraction)
	} else {
		out.Strategy = constants.StrategyHeuristicFallback
		out.Result = heuristic.ParseCardText(raw)
	}

	if p.Jobs != nil {
		var notes []string
		if extraction != nil {
			notes = extraction.Notes
		}
		if err := p.Jobs.FinishSuccess(ctx, jobID, out.Strategy, validated, notes); err != nil {
			return nil, err
		}
	}

	p.Logger.Info("scan.ok",
		"job_id", jobID,
		"strategy", string(out.Strategy),
		"customer_name", out.Result.CustomerName,
		"phone1", out.Result.Phone1,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// structuredExtraction attempts the structured path and returns the
// normalized extraction plus the validated JSON it came from, or (nil, nil)
// when the caller should fall back to heuristics.
func (p *Processor) structuredExtraction(ctx context.Context, jobID uuid.UUID, raw string, h entity.CandidateHints, provided string) (*entity.CardExtraction, json.RawMessage) {
	payload := provided
	if payload == "" {
		if p.Extractor == nil {
			return nil, nil
		}
		reply, err := p.Extractor.Extract(ctx, llm.ExtractRequest{OCRText: raw, Hints: h})
		if err != nil {
			p.Logger.Warn("scan.extract_failed", "job_id", jobID, "error", err)
			return nil, nil
		}
		payload = reply
	}

	repaired, ok := llm.RepairJSONString(payload)
	if !ok {
		p.Logger.Warn("scan.repair_failed", "job_id", jobID, "payload_bytes", len(payload))
		return nil, nil
	}

	pruned, dropped, err := llm.PruneUnknownKeys([]byte(repaired))
	if err != nil {
		p.Logger.Warn("scan.prune_failed", "job_id", jobID, "error", err)
		return nil, nil
	}
	if len(dropped) > 0 {
		p.Logger.Warn("scan.prune_dropped_keys", "job_id", jobID, "dropped", dropped)
	}

	extraction, err := llm.ValidateAndNormalizeExtraction(pruned)
	if err != nil {
		p.Logger.Warn("scan.schema_validation_failed", "job_id", jobID, "error", err)
		return nil, nil
	}
	return extraction, pruned
}

// ParseOnly runs the heuristic parser alone over raw OCR text. It never
// fails; empty input yields an empty result.
func (p *Processor) ParseOnly(rawText string) entity.ScanResult {
	return heuristic.ParseCardText(ocr.Normalize(rawText))
}
