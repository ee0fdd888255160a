package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jonathan/tax-return-agent/internal/assembly"
	"github.com/jonathan/tax-return-agent/internal/pipeline"
	"github.com/jonathan/tax-return-agent/internal/rendering"
	"github.com/jonathan/tax-return-agent/internal/textextract"
	"github.com/jonathan/tax-return-agent/internal/types"
)

// maxUploadBytes caps a whole multipart upload. Tax documents are small;
// anything bigger is a mistake.
const maxUploadBytes = 16 << 20

// SessionResponse represents the response for POST /sessions
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// UploadedFile reports the outcome for one file in an upload batch
type UploadedFile struct {
	Filename string `json:"filename"`
	Accepted bool   `json:"accepted"`
	Error    string `json:"error,omitempty"`
}

// UploadResponse represents the response for POST /sessions/{id}/documents
type UploadResponse struct {
	SessionID     string         `json:"session_id"`
	Files         []UploadedFile `json:"files"`
	DocumentCount int            `json:"document_count"`
}

// CalculateRequest carries taxpayer information for POST /sessions/{id}/calculate
type CalculateRequest struct {
	Name         string `json:"name"`
	SSN          string `json:"ssn"`
	Address      string `json:"address"`
	FilingStatus string `json:"filing_status"`
}

// DocumentStatus reports the extraction outcome for one uploaded document
type DocumentStatus struct {
	Name  string             `json:"name"`
	Type  types.DocumentType `json:"type,omitempty"`
	Error string             `json:"error,omitempty"`
}

// CalculateResponse represents the response for POST /sessions/{id}/calculate
type CalculateResponse struct {
	SessionID string               `json:"session_id"`
	Documents []DocumentStatus     `json:"documents"`
	Return    types.CompleteReturn `json:"return"`
	Summary   string               `json:"summary"`
}

// handleCreateSession starts a new upload session
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	session := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, SessionResponse{SessionID: session.ID})
}

// handleUpload accepts one or more tax documents for a session. PDF uploads
// go through text extraction; .txt uploads are taken as-is. A bad file never
// fails the batch, it is reported per file instead.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found or expired")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	files := r.MultipartForm.File["documents"]
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No files in 'documents' field")
		return
	}

	var report []UploadedFile
	for _, header := range files {
		result := UploadedFile{Filename: header.Filename}

		text, err := s.readUpload(header.Filename, func() (io.ReadCloser, error) { return header.Open() })
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Accepted = true
			s.sessions.AddDocuments(session, pipeline.Document{Name: header.Filename, Text: text})
		}
		report = append(report, result)
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		SessionID:     session.ID,
		Files:         report,
		DocumentCount: len(s.sessions.Documents(session)),
	})
}

// readUpload pulls plain text out of one uploaded file.
func (s *Server) readUpload(filename string, open func() (io.ReadCloser, error)) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".txt":
	default:
		return "", errors.New("unsupported file type, expected .pdf or .txt")
	}

	f, err := open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	if textextract.IsPDF(data) {
		return textextract.ExtractText(data)
	}
	return string(data), nil
}

// handleCalculate runs the pipeline over the session's documents
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found or expired")
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	docs := s.sessions.Documents(session)
	if len(docs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Session has no documents; upload first")
		return
	}

	opts := pipeline.RunOptions{
		Documents: docs,
		Personal: types.PersonalInfo{
			Name:         req.Name,
			SSN:          req.SSN,
			Address:      req.Address,
			FilingStatus: types.FilingStatus(req.FilingStatus),
		},
		Client:      s.client,
		Concurrency: s.concurrency,
	}

	result, err := pipeline.Run(r.Context(), opts)
	if err != nil {
		var missing *assembly.MissingInputError
		switch {
		case errors.As(err, &missing):
			s.errorResponse(w, http.StatusBadRequest, missing.Error())
		case errors.Is(err, pipeline.ErrNoDocumentsParsed):
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":     err.Error(),
				"documents": documentStatuses(result.Documents),
			})
		default:
			log.Printf("Calculation failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Calculation failed")
		}
		return
	}

	s.jsonResponse(w, http.StatusOK, CalculateResponse{
		SessionID: session.ID,
		Documents: documentStatuses(result.Documents),
		Return:    result.Return,
		Summary:   rendering.Summary(result.Return),
	})
}

// handleReset discards a session and its documents
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.sessions.Get(id); !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found or expired")
		return
	}

	s.sessions.Delete(id)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func documentStatuses(results []pipeline.DocumentResult) []DocumentStatus {
	statuses := make([]DocumentStatus, 0, len(results))
	for _, r := range results {
		status := DocumentStatus{Name: r.Name}
		if r.Err != nil {
			status.Error = r.Err.Error()
		} else {
			status.Type = r.Document.Type()
		}
		statuses = append(statuses, status)
	}
	return statuses
}
