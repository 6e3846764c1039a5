package constants

// ExtractionStrategy identifies which path produced a scan result.
type ExtractionStrategy string

// Stable values (store these exact strings in DB).
const (
	// StrategyStructured means the external extraction payload survived
	// repair and schema validation.
	StrategyStructured ExtractionStrategy = "STRUCTURED"
	// StrategyHeuristicFallback means the result came from the regex-only
	// parser, either by caller choice or after the structured path failed.
	StrategyHeuristicFallback ExtractionStrategy = "HEURISTIC_FALLBACK"
)
