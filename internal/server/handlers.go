package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadSize bounds resume uploads and JSON request bodies.
const maxUploadSize = 10 << 20

// renderRequest is the body of POST /v1/resumes/render
type renderRequest struct {
	Resume json.RawMessage `json:"resume" validate:"required"`
	Style  string          `json:"style" validate:"required,oneof=professional modern classic"`
	Format string          `json:"format" validate:"omitempty,oneof=docx pdf"`
}

// handleParse accepts a multipart upload under the "resume" field and
// returns the parsed record.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	format, err := extraction.FormatFromFilename(header.Filename)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := parsing.ParseDocument(data, format)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleScore scores a parsed record against the ATS heuristics.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	resume, err := s.decodeResume(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoring.Score(resume))
}

// handleEnhance rewrites resume content through the model.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if s.enhancer == nil {
		err := &ErrNotConfigured{Capability: "AI enhancement"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := s.decodeResume(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	enhanced, err := s.enhancer.EnhanceResume(r.Context(), resume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, enhanced)
}

// handleSuggestions returns model-generated improvement advice.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if s.enhancer == nil {
		err := &ErrNotConfigured{Capability: "AI suggestions"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := s.decodeResume(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	suggestions, err := s.enhancer.Suggestions(r.Context(), resume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// handleRender renders a record to a downloadable document.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req renderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := decodeResumeJSON(req.Resume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	style, err := rendering.ParseStyle(req.Style)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	filename := fmt.Sprintf("resume-%s", uuid.NewString())
	switch req.Format {
	case "pdf":
		pdf, err := rendering.RenderPDF(r.Context(), resume, style)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".pdf"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	default: // docx
		docx, err := rendering.RenderDOCX(resume, style)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".docx"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(docx)
	}
}

// decodeResume reads and validates a resume record request body.
func (s *Server) decodeResume(r *http.Request) (*types.Resume, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize))
	if err != nil {
		return nil, &ErrValidation{Field: "body", Message: "failed to read request body"}
	}
	return decodeResumeJSON(body)
}

func decodeResumeJSON(data []byte) (*types.Resume, error) {
	if err := schemas.ValidateResumeJSON(string(data)); err != nil {
		return nil, err
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, &ErrValidation{Field: "resume", Message: "invalid resume record"}
	}
	return &resume, nil
}
