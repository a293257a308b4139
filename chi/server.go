// Package chi serves extraction and stored documents over HTTP.
package chi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/justext"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodySize caps the HTML accepted by POST /extract.
const DefaultMaxBodySize = 10 << 20

// Server routes HTTP requests to the extractor and the document store.
type Server struct {
	router      chi.Router
	extractor   justext.Extractor
	fetcher     justext.Fetcher
	documents   justext.DocumentService
	logger      *slog.Logger
	maxBodySize int64
}

// NewServer creates a Server. documents may be nil, in which case the
// /documents routes are not mounted.
func NewServer(extractor justext.Extractor, fetcher justext.Fetcher, documents justext.DocumentService, logger *slog.Logger) *Server {
	s := &Server{
		extractor:   extractor,
		fetcher:     fetcher,
		documents:   documents,
		logger:      logger,
		maxBodySize: DefaultMaxBodySize,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))

	r.Get("/health", s.handleHealth)
	r.Post("/extract", s.handleExtract)

	if s.documents != nil {
		r.Route("/documents", func(r chi.Router) {
			r.Get("/", s.handleListDocuments)
			r.Post("/", s.handleCreateDocument)
			r.Get("/{id}", s.handleGetDocument)
			r.Delete("/{id}", s.handleDeleteDocument)
		})
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract extracts the request body, or the page at ?url= when the
// body is empty.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	doc, err := s.extract(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, doc.Text())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleCreateDocument extracts like handleExtract and stores the result.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.extract(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.documents.CreateDocument(r.Context(), doc); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/documents/"+doc.ID)
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := justext.DocumentFilter{}
	if v := q.Get("url"); v != "" {
		filter.SourceURL = &v
	}
	if v := q.Get("language"); v != "" {
		filter.Language = &v
	}

	var err error
	if filter.Limit, err = intParam(q.Get("limit"), 50); err != nil {
		s.writeError(w, r, err)
		return
	}
	if filter.Offset, err = intParam(q.Get("offset"), 0); err != nil {
		s.writeError(w, r, err)
		return
	}

	docs, err := s.documents.FindDocuments(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if docs == nil {
		docs = []*justext.Document{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// extract reads the HTML of a request and runs the extractor with options
// taken from the query string.
func (s *Server) extract(w http.ResponseWriter, r *http.Request) (*justext.Document, error) {
	q := r.URL.Query()
	sourceURL := q.Get("url")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		return nil, justext.WrapError(justext.EINVALID, err, "failed to read request body")
	}

	html := string(body)
	if justext.IsBlank(html) {
		if sourceURL == "" {
			return nil, justext.Errorf(justext.EINVALID, "request body or url parameter required")
		}
		if html, err = s.fetcher.Fetch(r.Context(), sourceURL); err != nil {
			return nil, err
		}
	}
	if sourceURL == "" {
		sourceURL = "request"
	}

	opts := justext.ExtractOptions{
		Language:        q.Get("language"),
		DetectLanguage:  q.Get("detect") == "true",
		KeepBoilerplate: q.Get("keep_boilerplate") == "true",
	}
	return s.extractor.Extract(r.Context(), html, sourceURL, opts)
}

// statusCodes maps application error codes to HTTP status codes.
var statusCodes = map[string]int{
	justext.EINVALID:  http.StatusBadRequest,
	justext.ENOTFOUND: http.StatusNotFound,
	justext.EPARSE:    http.StatusUnprocessableEntity,
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := justext.ErrorCode(err)
	status, ok := statusCodes[code]
	if !ok {
		status = http.StatusInternalServerError
		if s.logger != nil {
			s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		}
	}
	writeJSON(w, status, map[string]string{"code": code, "error": justext.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func intParam(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, justext.Errorf(justext.EINVALID, "invalid integer %q", s)
	}
	return n, nil
}

// requestLogger logs each request at debug level.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger == nil {
				next.ServeHTTP(w, r)
				return
			}
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func(begin time.Time) {
				logger.Debug("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"request_id", middleware.GetReqID(r.Context()),
					"duration", time.Since(begin),
				)
			}(time.Now())
			next.ServeHTTP(ww, r)
		})
	}
}
