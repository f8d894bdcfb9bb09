package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/pankajg09/data-dictionary-system/cache"
	"github.com/pankajg09/data-dictionary-system/config"
	"github.com/pankajg09/data-dictionary-system/internal/analysis"
	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

type AnalysisController struct {
	analyzer *analysis.Analyzer
	cache    *cache.Cache
	log      logrus.FieldLogger
}

type SQLAnalysisRequest struct {
	SQLCode string `json:"sql_code"`
}

type CodeAnalysisRequest struct {
	Code string `json:"code" form:"code"`
}

type AnalysisResponse struct {
	Status string             `json:"status"`
	Result *dictionary.Result `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// NewAnalysisController wires the orchestrator from configuration, plus
// the result cache consulted before any extraction runs.
func NewAnalysisController(cfg *config.Config, log logrus.FieldLogger) *AnalysisController {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &AnalysisController{
		analyzer: analysis.NewAnalyzerFromConfig(cfg, log),
		cache:    cache.New(cfg),
		log:      log,
	}
}

// AnalyzeSQL handles POST /api/databases/analyze-sql.
func (ac *AnalysisController) AnalyzeSQL(c echo.Context) error {
	var req SQLAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AnalysisResponse{
			Status: "error",
			Error:  "Invalid request format",
		})
	}

	if req.SQLCode == "" {
		return c.JSON(http.StatusBadRequest, AnalysisResponse{
			Status: "error",
			Error:  "No SQL code provided",
		})
	}

	return ac.analyze(c, req.SQLCode)
}

// AnalyzeCode handles POST /api/analysis/analyze. The input may arrive as
// a multipart file upload or as a code field.
func (ac *AnalysisController) AnalyzeCode(c echo.Context) error {
	text, err := ac.readCodeInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, AnalysisResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return ac.analyze(c, text)
}

func (ac *AnalysisController) readCodeInput(c echo.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			return "", fmt.Errorf("failed to read uploaded file: %w", err)
		}
		return string(content), nil
	}

	var req CodeAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return "", fmt.Errorf("invalid request format")
	}
	if req.Code == "" {
		return "", fmt.Errorf("no code provided")
	}
	return req.Code, nil
}

func (ac *AnalysisController) analyze(c echo.Context, text string) error {
	if result, ok := ac.cache.Get(text); ok {
		return c.JSON(http.StatusOK, AnalysisResponse{
			Status: "success",
			Result: result,
		})
	}

	result, err := ac.analyzer.Analyze(c.Request().Context(), text)
	if err != nil {
		ac.log.WithError(err).Error("analysis failed")
		return c.JSON(http.StatusInternalServerError, AnalysisResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	if err := ac.cache.Set(text, result); err != nil {
		ac.log.WithError(err).Warn("failed to cache analysis result")
	}

	return c.JSON(http.StatusOK, AnalysisResponse{
		Status: "success",
		Result: result,
	})
}
