package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/cardscan/internal/ocr"
	"github.com/ekaraca/cardscan/internal/pipeline"
)

// ScanRequest is the body of POST /v1/scans. OCR carries the raw engine
// output as-is; Extraction optionally carries an already produced external
// extraction payload (the arbitrary string, not parsed JSON).
type ScanRequest struct {
	OCR        json.RawMessage `json:"ocr" binding:"required"`
	Extraction string          `json:"extraction"`
}

func (s *Server) handleScan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	payload, err := ocr.DecodePayload(req.OCR)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := s.processor.Scan(c.Request.Context(), pipeline.Input{
		Payload:       payload,
		RawExtraction: req.Extraction,
	})
	if err != nil {
		s.logger.Error("scan failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// ParseRequest is the body of POST /v1/scans/parse: heuristic-only parsing
// with no external extraction and no persistence.
type ParseRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

func (s *Server) handleParse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": s.processor.ParseOnly(req.RawText)})
}
