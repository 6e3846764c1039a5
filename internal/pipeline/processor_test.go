package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/llm"
	"github.com/ekaraca/cardscan/internal/ocr"
)

type stubExtractor struct {
	reply string
	err   error
	calls int
}

func (s *stubExtractor) Extract(_ context.Context, _ llm.ExtractRequest) (string, error) {
	s.calls++
	return s.reply, s.err
}

type memoryJobs struct {
	started   int
	strategy  constants.ExtractionStrategy
	extracted json.RawMessage
	notes     []string
}

func (m *memoryJobs) Start(_ context.Context, _ int) (uuid.UUID, error) {
	m.started++
	return uuid.New(), nil
}

func (m *memoryJobs) FinishSuccess(_ context.Context, _ uuid.UUID, strategy constants.ExtractionStrategy, extracted json.RawMessage, notes []string) error {
	m.strategy = strategy
	m.extracted = extracted
	m.notes = notes
	return nil
}

func (m *memoryJobs) FinishFailure(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (m *memoryJobs) SetContactID(_ context.Context, _, _ uuid.UUID) error { return nil }

const cardText = "Ahmet Yılmaz\nAcme Sanayi A.S.\nahmet@acme.com.tr\n0532 123 45 67\nOrganize Sanayi Bölgesi, No:5\n"

const goodReply = `{
	"name": "Ahmet Yılmaz", "title": null, "company": "Acme Sanayi A.S.",
	"phones": ["0532 123 45 67"], "emails": ["ahmet@acme.com.tr"],
	"website": null, "address": "Organize Sanayi Bölgesi No:5",
	"social": {"linkedin": null, "instagram": null, "x": null, "facebook": null},
	"notes": []
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScanStructuredPath(t *testing.T) {
	ext := &stubExtractor{reply: goodReply}
	jobs := &memoryJobs{}
	p := NewProcessor(testLogger(), ext, jobs)

	out, err := p.Scan(context.Background(), Input{Payload: ocr.FromParts(cardText, nil)})
	require.NoError(t, err)

	assert.Equal(t, constants.StrategyStructured, out.Strategy)
	require.NotNil(t, out.Extraction)
	assert.Equal(t, "Ahmet Yılmaz", out.Result.CustomerName)
	assert.Equal(t, "+905321234567", out.Result.Phone1)
	assert.Equal(t, "ahmet@acme.com.tr", out.Result.Email)
	require.NotNil(t, out.Extraction.Company)
	assert.Equal(t, "Acme Sanayi A.Ş.", *out.Extraction.Company)

	assert.Equal(t, 1, ext.calls)
	assert.Equal(t, 1, jobs.started)
	assert.Equal(t, constants.StrategyStructured, jobs.strategy)
	assert.True(t, json.Valid(jobs.extracted))
}

func TestScanFallsBackOnExtractorError(t *testing.T) {
	ext := &stubExtractor{err: errors.New("upstream timeout")}
	jobs := &memoryJobs{}
	p := NewProcessor(testLogger(), ext, jobs)

	out, err := p.Scan(context.Background(), Input{Payload: ocr.FromParts(cardText, nil)})
	require.NoError(t, err)

	assert.Equal(t, constants.StrategyHeuristicFallback, out.Strategy)
	assert.Nil(t, out.Extraction)
	assert.Equal(t, "Ahmet Yılmaz", out.Result.CustomerName)
	assert.Equal(t, "0532 123 45 67", out.Result.Phone1)
	assert.Equal(t, constants.StrategyHeuristicFallback, jobs.strategy)
	assert.Nil(t, jobs.extracted)
}

func TestScanFallsBackOnUnrepairableReply(t *testing.T) {
	ext := &stubExtractor{reply: "sorry, I could not read the card"}
	p := NewProcessor(testLogger(), ext, nil)

	out, err := p.Scan(context.Background(), Input{Payload: ocr.FromParts(cardText, nil)})
	require.NoError(t, err)
	assert.Equal(t, constants.StrategyHeuristicFallback, out.Strategy)
	assert.Equal(t, "ahmet@acme.com.tr", out.Result.Email)
}

func TestScanFallsBackOnSchemaViolation(t *testing.T) {
	ext := &stubExtractor{reply: `{"name": "Ali", "phones": "not-an-array"}`}
	p := NewProcessor(testLogger(), ext, nil)

	out, err := p.Scan(context.Background(), Input{Payload: ocr.FromParts(cardText, nil)})
	require.NoError(t, err)
	assert.Equal(t, constants.StrategyHeuristicFallback, out.Strategy)
}

func TestScanProvidedExtractionSkipsExtractor(t *testing.T) {
	ext := &stubExtractor{reply: goodReply}
	p := NewProcessor(testLogger(), ext, nil)

	messy := "noise {'name': 'Ali', 'title': null, 'company': null, 'phones': []," +
		" 'emails': [], 'website': null, 'address': null," +
		" 'social': {'linkedin': null, 'instagram': null, 'x': null, 'facebook': null}," +
		" 'notes': [],} trailing"
	out, err := p.Scan(context.Background(), Input{
		Payload:       ocr.FromParts(cardText, nil),
		RawExtraction: messy,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StrategyStructured, out.Strategy)
	require.NotNil(t, out.Extraction)
	require.NotNil(t, out.Extraction.Name)
	assert.Equal(t, "Ali", *out.Extraction.Name)
	assert.Zero(t, ext.calls)
}

func TestScanNoExtractorRunsHeuristics(t *testing.T) {
	p := NewProcessor(testLogger(), nil, nil)

	out, err := p.Scan(context.Background(), Input{Payload: ocr.FromParts(cardText, nil)})
	require.NoError(t, err)
	assert.Equal(t, constants.StrategyHeuristicFallback, out.Strategy)
	assert.False(t, out.Hints.Empty())
	assert.Equal(t, uuid.Nil, out.JobID)
}

func TestScanUnknownKeysArePrunedNotFatal(t *testing.T) {
	reply := `{
		"name": "Ali", "title": null, "company": null,
		"phones": [], "emails": [], "website": null, "address": null,
		"social": {"linkedin": null, "instagram": null, "x": null, "facebook": null},
		"notes": [], "fax": "0212 555 11 22", "department": "Satış"
	}`
	p := NewProcessor(testLogger(), &stubExtractor{reply: reply}, nil)

	out, err := p.Scan(context.Background(), Input{Payload: ocr.FromParts(cardText, nil)})
	require.NoError(t, err)
	assert.Equal(t, constants.StrategyStructured, out.Strategy)
}

func TestParseOnly(t *testing.T) {
	p := NewProcessor(testLogger(), nil, nil)
	got := p.ParseOnly(cardText)
	assert.Equal(t, "Ahmet Yılmaz", got.CustomerName)
	assert.Empty(t, p.ParseOnly("  ").CustomerName)
}
