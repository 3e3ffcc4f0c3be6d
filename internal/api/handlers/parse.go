package handlers

import (
	"net/http"
	"time"

	"cvparse-utils/internal/api/validation"
	"cvparse-utils/internal/logging"
	"cvparse-utils/internal/parser"
	"cvparse-utils/pkg/models"
	"cvparse-utils/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterParseValidators(v)
	return v
}

// ParseHandler handles CV parsing requests
func ParseHandler(orchestrator *parser.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		requestID := requestIDFromContext(c)
		logger := logging.GetGlobalLogger()

		var req models.ParseRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind parse request", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Parse request validation failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		doc := models.ParsedDocument{
			RawText:      req.RawText,
			DocumentType: req.DocumentType,
		}

		result, strategy, err := orchestrator.Parse(c.Request().Context(), doc, req.Options)
		if err != nil {
			logger.Warn("Parse request failed", map[string]interface{}{
				"request_id":    requestID,
				"document_type": string(req.DocumentType),
				"error":         err.Error(),
			})
			status := http.StatusInternalServerError
			if utils.IsParsingError(err) {
				status = http.StatusUnprocessableEntity
			}
			return c.JSON(status, models.ErrorResponse{
				Error:     "parsing_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Parse request completed", map[string]interface{}{
			"request_id":      requestID,
			"document_type":   string(req.DocumentType),
			"strategy":        strategy,
			"processing_time": utils.FormatDuration(time.Since(start)),
		})

		return c.JSON(http.StatusOK, models.ParseResponse{
			Success:        true,
			Result:         result,
			Strategy:       strategy,
			ProcessingTime: time.Since(start),
			RequestID:      requestID,
		})
	}
}

// requestIDFromContext returns the ID set by the validation middleware,
// minting one when the handler is called outside the middleware chain
func requestIDFromContext(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
