package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// ChatRequest is a question for the assistant
// @Description Question for the assistant
type ChatRequest struct {
	Message      string              `json:"message" example:"언제 소풍 가나요?"`
	Language     string              `json:"language,omitempty" example:"English"`
	TopK         int                 `json:"top_k,omitempty" example:"5"`
	Conversation domain.Conversation `json:"conversation,omitempty"`
}

// ProgramClickRequest records a click on a recommended program
// @Description Click on a recommended program
type ProgramClickRequest struct {
	Language string `json:"language" example:"Tiếng Việt"`
	Title    string `json:"title" example:"한국어 교실"`
	Link     string `json:"link" example:"https://example.org/p/1"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks the database connection)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "Database unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleLogin godoc
// @Summary      Admin login
// @Description  Authenticate with the admin password to receive a bearer token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Admin credentials"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials or admin access disabled"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "admin access disabled")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "password is required")
		default:
			writeError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Notice endpoints

// handleUploadNotice godoc
// @Summary      Ingest a notice
// @Description  Upload a school notice (PDF or photo) for analysis and indexing
// @Tags         Notices
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Notice file (pdf, jpg, jpeg, png)"
// @Success      201   {object}  domain.IngestResult
// @Failure      400   {object}  ErrorResponse  "Missing file or unsupported type"
// @Failure      422   {object}  ErrorResponse  "No text could be extracted"
// @Failure      502   {object}  ErrorResponse  "Summarization failed"
// @Failure      500   {object}  ErrorResponse  "Storage failure"
// @Router       /notices [post]
func (s *Server) handleUploadNotice(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	result, err := s.ingestService.Ingest(r.Context(), domain.Upload{
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrExtraction):
			writeError(w, http.StatusUnprocessableEntity, "no text could be extracted from the file")
		case errors.Is(err, domain.ErrSummarization):
			writeError(w, http.StatusBadGateway, "summarization failed")
		default:
			writeError(w, http.StatusInternalServerError, "ingestion failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// handleListNotices godoc
// @Summary      List recent notices
// @Description  Returns recently analyzed notices, translated into the requested language
// @Tags         Notices
// @Produce      json
// @Param        limit  query     int     false  "Maximum notices to return"  default(20)
// @Param        lang   query     string  false  "Target language"            default(한국어 (Korean))
// @Success      200    {array}   domain.Notice
// @Failure      500    {object}  ErrorResponse  "Listing failed"
// @Router       /notices [get]
func (s *Server) handleListNotices(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	lang := r.URL.Query().Get("lang")

	notices, err := s.noticeService.Recent(r.Context(), limit, lang)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list notices")
		return
	}
	if notices == nil {
		notices = []domain.Notice{}
	}
	writeJSON(w, http.StatusOK, notices)
}

// Chat endpoints

// handleChat godoc
// @Summary      Ask the assistant
// @Description  Answers a question about school life, grounded in stored notices when possible
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      ChatRequest  true  "Question"
// @Success      200      {object}  domain.Answer
// @Failure      400      {object}  ErrorResponse  "Invalid request"
// @Failure      502      {object}  ErrorResponse  "Generation failed"
// @Router       /chat [post]
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := s.answerService.Answer(r.Context(), domain.Question{
		Text:         req.Message,
		Language:     req.Language,
		TopK:         req.TopK,
		Conversation: req.Conversation,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "message is required")
		case errors.Is(err, domain.ErrGeneration):
			writeError(w, http.StatusBadGateway, "answer generation failed")
		default:
			writeError(w, http.StatusInternalServerError, "chat failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// handleChatStream godoc
// @Summary      Ask the assistant (streaming)
// @Description  Same as /chat but streams the answer as server-sent events. Each event carries a text fragment; the stream ends with [DONE].
// @Tags         Chat
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body  ChatRequest  true  "Question"
// @Success      200  {string}  string  "SSE stream"
// @Failure      400  {object}  ErrorResponse  "Invalid request"
// @Router       /chat/stream [post]
func (s *Server) handleChatStream(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	out, errCh := s.answerService.AnswerStream(r.Context(), domain.Question{
		Text:         req.Message,
		Language:     req.Language,
		TopK:         req.TopK,
		Conversation: req.Conversation,
	})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for fragment := range out {
		payload, err := json.Marshal(map[string]string{"delta": fragment})
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	if err := <-errCh; err != nil {
		payload, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintf(w, "data: %s\n\n", payload)
	} else {
		fmt.Fprint(w, "data: [DONE]\n\n")
	}
	flusher.Flush()
}

// Program endpoints

// handleListPrograms godoc
// @Summary      List support programs
// @Description  Returns the current program listings for multicultural families
// @Tags         Programs
// @Produce      json
// @Success      200  {array}   domain.Program
// @Failure      503  {object}  ErrorResponse  "Directory unavailable"
// @Router       /programs [get]
func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.programService.Recommend(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "program directory unavailable")
		return
	}
	if programs == nil {
		programs = []domain.Program{}
	}
	writeJSON(w, http.StatusOK, programs)
}

// handleProgramClick godoc
// @Summary      Record a program click
// @Description  Appends an interaction entry for the admin dashboard
// @Tags         Programs
// @Accept       json
// @Produce      json
// @Param        request  body      ProgramClickRequest  true  "Click details"
// @Success      202      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Router       /programs/click [post]
func (s *Server) handleProgramClick(w http.ResponseWriter, r *http.Request) {
	var req ProgramClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.programService.LogClick(r.Context(), req.Language, req.Title, req.Link)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

// Admin endpoints

// handleAdminStats godoc
// @Summary      Interaction statistics
// @Description  Aggregated program clicks and per-language usage for the admin dashboard
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.InteractionStats
// @Failure      500  {object}  ErrorResponse  "Aggregation failed"
// @Router       /admin/stats [get]
func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.programService.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Response helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
