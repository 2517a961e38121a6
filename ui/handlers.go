package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleDefaults returns the default scenario and the accepted input ranges,
// so an interactive caller can seed its controls.
func (s *Server) handleDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"scenario":        s.cfg.Scenario.Default,
		"limits":          s.cfg.Scenario.Limits,
		"variance_method": s.cfg.Engine.VarianceMethod,
		"interval_method": s.cfg.Engine.IntervalMethod,
	})
}

// handleCompare computes the full result bundle for one scenario.
func (s *Server) handleCompare(c *gin.Context) {
	var scenario trial.TrialScenario
	if err := c.ShouldBindJSON(&scenario); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.service.Compare(scenario)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleSummary computes one scenario and renders display-ready strings.
func (s *Server) handleSummary(c *gin.Context) {
	var scenario trial.TrialScenario
	if err := c.ShouldBindJSON(&scenario); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	summary, err := s.service.Summarize(scenario)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// renderError maps domain failures to HTTP statuses. All engine failures are
// caller-recoverable: different inputs, or a different method selection.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case core.IsInvalidScenario(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case core.IsUndefinedStatistic(err), core.IsNotComputable(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
