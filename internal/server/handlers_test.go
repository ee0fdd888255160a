package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const w2Upload = `Form W-2 Wage and Tax Statement
Employer: Acme Corp
Employee: Jane Taxpayer
Wages (Box 1): $52,000.00
Federal Tax Withheld (Box 2): $6,500.00
Social Security Wages (Box 3): $52,000.00
Medicare Wages (Box 5): $52,000.00`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 0})
}

func doRequest(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, s *Server) string {
	t.Helper()
	rec := doRequest(t, s, httptest.NewRequest("POST", "/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func uploadText(t *testing.T, s *Server, sessionID string, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := writer.CreateFormFile("documents", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", fmt.Sprintf("/sessions/%s/documents", sessionID), &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return doRequest(t, s, req)
}

func calculate(t *testing.T, s *Server, sessionID string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", fmt.Sprintf("/sessions/%s/calculate", sessionID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(t, s, req)
}

const validPersonalJSON = `{
	"name": "Jane Taxpayer",
	"ssn": "123-45-6789",
	"address": "1 Main St, Springfield",
	"filing_status": "Single"
}`

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestUploadAndCalculate(t *testing.T) {
	s := newTestServer(t)
	sessionID := createSession(t, s)

	rec := uploadText(t, s, sessionID, map[string]string{"w2.txt": w2Upload})
	require.Equal(t, http.StatusOK, rec.Code)

	var upload UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upload))
	require.Len(t, upload.Files, 1)
	assert.True(t, upload.Files[0].Accepted)
	assert.Equal(t, 1, upload.DocumentCount)

	rec = calculate(t, s, sessionID, validPersonalJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var calc CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calc))
	require.Len(t, calc.Documents, 1)
	assert.Equal(t, "w2.txt", calc.Documents[0].Name)
	assert.Empty(t, calc.Documents[0].Error)

	assert.Equal(t, "52000", calc.Return.AGI.String())
	assert.Equal(t, "4256", calc.Return.TaxCalculation.TotalTax.String())
	assert.Contains(t, calc.Summary, "You are due a refund of $2,244.00")
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	s := newTestServer(t)
	sessionID := createSession(t, s)

	rec := uploadText(t, s, sessionID, map[string]string{"w2.docx": "whatever"})
	require.Equal(t, http.StatusOK, rec.Code)

	var upload UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upload))
	require.Len(t, upload.Files, 1)
	assert.False(t, upload.Files[0].Accepted)
	assert.Contains(t, upload.Files[0].Error, "unsupported file type")
	assert.Equal(t, 0, upload.DocumentCount)
}

func TestUploadUnknownSession(t *testing.T) {
	s := newTestServer(t)

	rec := uploadText(t, s, "no-such-session", map[string]string{"w2.txt": w2Upload})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalculateMissingPersonalInfo(t *testing.T) {
	s := newTestServer(t)
	sessionID := createSession(t, s)
	uploadText(t, s, sessionID, map[string]string{"w2.txt": w2Upload})

	rec := calculate(t, s, sessionID, `{"name": "Jane Taxpayer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ssn")
}

func TestCalculateEmptySession(t *testing.T) {
	s := newTestServer(t)
	sessionID := createSession(t, s)

	rec := calculate(t, s, sessionID, validPersonalJSON)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no documents")
}

func TestCalculateNoDocumentsParsed(t *testing.T) {
	s := newTestServer(t)
	sessionID := createSession(t, s)
	uploadText(t, s, sessionID, map[string]string{"notes.txt": "grocery list"})

	rec := calculate(t, s, sessionID, validPersonalJSON)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "no documents could be parsed")
}

func TestResetSession(t *testing.T) {
	s := newTestServer(t)
	sessionID := createSession(t, s)
	uploadText(t, s, sessionID, map[string]string{"w2.txt": w2Upload})

	rec := doRequest(t, s, httptest.NewRequest("DELETE", fmt.Sprintf("/sessions/%s", sessionID), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Session is gone after reset.
	rec = calculate(t, s, sessionID, validPersonalJSON)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
