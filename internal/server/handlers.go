package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"textprep/internal/domain"
)

type cleanRequest struct {
	URL string `json:"url"`
}

type analyzeRequest struct {
	Text *string `json:"text"`
}

type ngramsRequest struct {
	Text      string  `json:"text"`
	N         int     `json:"n"`
	Smoothing float64 `json:"smoothing"`
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Text preprocessing service is running",
	})
}

// handleClean fetches the document at the requested URL, cleans it and
// returns the normalized text with statistics and a summary.
func (s *Server) handleClean(c *gin.Context) {
	var req cleanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing 'url' field in JSON request.",
		})
		return
	}

	result, err := s.svc.ProcessURL(c.Request.Context(), req.URL)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"cleaned_text": result.CleanedText,
		"statistics":   result.Statistics,
		"summary":      result.Summary,
	})
}

// handleAnalyze computes statistics over raw text supplied in the request.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing 'text' field in request body.",
		})
		return
	}

	statistics, err := s.svc.Analyze(*req.Text)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": statistics,
	})
}

// handleNgrams returns word n-gram counts and probabilities for raw text.
func (s *Server) handleNgrams(c *gin.Context) {
	var req ngramsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing 'text' field in request body.",
		})
		return
	}
	if req.N < 1 {
		req.N = 1
	}

	counts, probabilities, err := s.svc.Ngrams(req.Text, req.N, req.Smoothing)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"n":             req.N,
		"ngrams":        counts,
		"probabilities": probabilities,
	})
}

// writeError maps pipeline failures to HTTP statuses. Validation and
// degenerate-result failures carry their message to the caller; anything
// unexpected is logged in full and reported generically.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotTextURL):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrEmptyDocument):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "The text was cleaned down to nothing. Check your URL or cleaning rules.",
		})
	case errors.Is(err, domain.ErrFetchFailed):
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
	default:
		s.logger.Error("pipeline failure", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Text processing error",
		})
	}
}
