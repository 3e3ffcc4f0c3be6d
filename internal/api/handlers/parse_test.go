package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvparse-utils/internal/config"
	"cvparse-utils/internal/parser"
	"cvparse-utils/pkg/models"
)

func newTestHandler(t *testing.T) echo.HandlerFunc {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return ParseHandler(parser.NewOrchestrator(cfg, nil))
}

func doParseRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestParseHandlerSuccess(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"raw_text": "John Smith\njohn@example.com\n\nSKILLS\nPython (Expert), Go", "document_type": "pdf"}`
	rec := doParseRequest(t, handler, body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "rule_based", resp.Strategy)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "John", resp.Result.PersonalInfo.FirstName)
	assert.Len(t, resp.Result.Skills, 2)
	assert.NotEmpty(t, resp.RequestID)
}

func TestParseHandlerInvalidDocumentType(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"raw_text": "some text", "document_type": "csv"}`
	rec := doParseRequest(t, handler, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

func TestParseHandlerMissingRawText(t *testing.T) {
	handler := newTestHandler(t)

	rec := doParseRequest(t, handler, `{"document_type": "pdf"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseHandlerWhitespaceOnlyText(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"raw_text": "   \n\t  ", "document_type": "docx"}`
	rec := doParseRequest(t, handler, body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "parsing_failed", resp.Error)
}

func TestParseHandlerMalformedBody(t *testing.T) {
	handler := newTestHandler(t)

	rec := doParseRequest(t, handler, `{"raw_text": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
