package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pinwall/pinwall/pkg/board"
	pinerrors "github.com/pinwall/pinwall/pkg/errors"
	"github.com/pinwall/pinwall/pkg/observability"
	"github.com/pinwall/pinwall/pkg/pipeline"
	"github.com/pinwall/pinwall/pkg/store"
)

// arrangeRequest is the body of POST /api/arrange.
type arrangeRequest struct {
	Board   board.Board      `json:"board"`
	Options pipeline.Options `json:"options"`
}

// arrangeResponse is the body returned by the arrange endpoints.
type arrangeResponse struct {
	Board     board.Board    `json:"board"`
	BoardHash string         `json:"board_hash"`
	Stats     pipeline.Stats `json:"stats"`
	Cached    bool           `json:"cached"`
}

// boardSummary is one entry of the board list response.
type boardSummary struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Items     int       `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	var req arrangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, pinerrors.Wrap(pinerrors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	result, err := s.runner.Arrange(r.Context(), req.Board, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, arrangeResponse{
		Board:     result.Board,
		BoardHash: result.BoardHash,
		Stats:     result.Stats,
		Cached:    result.CacheInfo.LayoutHit,
	})
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, pinerrors.Wrap(pinerrors.ErrCodeStore, err, "list boards"))
		return
	}

	summaries := make([]boardSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, boardSummary{
			Name:      rec.Name,
			Title:     rec.Board.Title,
			Items:     len(rec.Board.Items),
			UpdatedAt: rec.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"boards": summaries})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handlePutBoard(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var b board.Board
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, pinerrors.Wrap(pinerrors.ErrCodeInvalidBoard, err, "malformed board"))
		return
	}

	start := time.Now()
	err := s.store.Set(r.Context(), store.NewRecord(name, b))
	observability.Store().OnSave(r.Context(), name, len(b.Items), time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info("board saved", "name", name, "items", len(b.Items))
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	err := s.store.Delete(r.Context(), name)
	observability.Store().OnDelete(r.Context(), name, err)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleArrangeStored(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadBoard(w, r)
	if !ok {
		return
	}

	var opts pipeline.Options
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			writeError(w, pinerrors.Wrap(pinerrors.ErrCodeInvalidInput, err, "malformed options"))
			return
		}
	}

	result, err := s.runner.Arrange(r.Context(), rec.Board, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	// Persist the arranged positions.
	rec.Board = result.Board
	if err := s.store.Set(r.Context(), rec); err != nil {
		writeError(w, pinerrors.Wrap(pinerrors.ErrCodeStore, err, "save arranged board"))
		return
	}

	writeJSON(w, http.StatusOK, arrangeResponse{
		Board:     result.Board,
		BoardHash: result.BoardHash,
		Stats:     result.Stats,
		Cached:    result.CacheInfo.LayoutHit,
	})
}

// loadBoard fetches the named board, writing the error response on failure.
func (s *Server) loadBoard(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	name := chi.URLParam(r, "name")

	start := time.Now()
	rec, err := s.store.Get(r.Context(), name)
	observability.Store().OnLoad(r.Context(), name, time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if rec == nil {
		writeError(w, pinerrors.New(pinerrors.ErrCodeBoardNotFound, "board %q not found", name))
		return nil, false
	}
	return rec, true
}
