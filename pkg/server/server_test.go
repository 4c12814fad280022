package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pinwall/pinwall/pkg/board"
	"github.com/pinwall/pinwall/pkg/pipeline"
	"github.com/pinwall/pinwall/pkg/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(Config{
		Runner: pipeline.NewRunner(nil, nil, logger),
		Store:  st,
		Logger: logger,
	})
}

func testBoard() board.Board {
	return board.Board{
		Title:  "api test",
		Width:  3000,
		Height: 2000,
		Items: []board.Item{
			{ID: "o1", Kind: board.KindObjective, Label: "launch",
				Connections: []board.Connection{{ID: "c1", TargetID: "i1"}}},
			{ID: "i1", Kind: board.KindIdea, Label: "teaser"},
		},
	}
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	rr := doJSON(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestArrange(t *testing.T) {
	s := newTestServer(t)

	rr := doJSON(t, s, http.MethodPost, "/api/arrange", arrangeRequest{
		Board:   testBoard(),
		Options: pipeline.Options{Strategy: "organized"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}

	var resp arrangeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Board.Items) != 2 {
		t.Errorf("items = %d, want 2", len(resp.Board.Items))
	}
	if resp.BoardHash == "" {
		t.Error("board_hash missing")
	}
	if resp.Stats.ItemCount != 2 {
		t.Errorf("stats = %+v", resp.Stats)
	}
}

func TestArrangeInvalidStrategy(t *testing.T) {
	s := newTestServer(t)

	rr := doJSON(t, s, http.MethodPost, "/api/arrange", arrangeRequest{
		Board:   testBoard(),
		Options: pipeline.Options{Strategy: "spiral"},
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rr.Code, rr.Body)
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error.Code != "INVALID_STRATEGY" {
		t.Errorf("code = %q, want INVALID_STRATEGY", resp.Error.Code)
	}
}

func TestArrangeMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/arrange", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestBoardCRUD(t *testing.T) {
	s := newTestServer(t)

	// Create
	rr := doJSON(t, s, http.MethodPut, "/api/boards/roadmap", testBoard())
	if rr.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", rr.Code, rr.Body)
	}

	// Read
	rr = doJSON(t, s, http.MethodGet, "/api/boards/roadmap", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d", rr.Code)
	}
	var rec store.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Board.Title != "api test" {
		t.Errorf("title = %q", rec.Board.Title)
	}

	// List
	rr = doJSON(t, s, http.MethodGet, "/api/boards", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	var list struct {
		Boards []boardSummary `json:"boards"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Boards) != 1 || list.Boards[0].Name != "roadmap" {
		t.Errorf("boards = %+v", list.Boards)
	}

	// Delete
	rr = doJSON(t, s, http.MethodDelete, "/api/boards/roadmap", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rr.Code)
	}

	// Gone
	rr = doJSON(t, s, http.MethodGet, "/api/boards/roadmap", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", rr.Code)
	}
}

func TestGetBoardNotFound(t *testing.T) {
	s := newTestServer(t)

	rr := doJSON(t, s, http.MethodGet, "/api/boards/missing", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error.Code != "BOARD_NOT_FOUND" {
		t.Errorf("code = %q, want BOARD_NOT_FOUND", resp.Error.Code)
	}
}

func TestPutBoardInvalidName(t *testing.T) {
	s := newTestServer(t)

	rr := doJSON(t, s, http.MethodPut, "/api/boards/bad..name", testBoard())
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rr.Code, rr.Body)
	}
}

func TestArrangeStored(t *testing.T) {
	s := newTestServer(t)

	if rr := doJSON(t, s, http.MethodPut, "/api/boards/roadmap", testBoard()); rr.Code != http.StatusOK {
		t.Fatalf("put status = %d", rr.Code)
	}

	rr := doJSON(t, s, http.MethodPost, "/api/boards/roadmap/arrange",
		pipeline.Options{Strategy: "messy", Seed: 3})
	if rr.Code != http.StatusOK {
		t.Fatalf("arrange status = %d, body %s", rr.Code, rr.Body)
	}

	var resp arrangeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Board.Items) != 2 {
		t.Errorf("items = %d, want 2", len(resp.Board.Items))
	}

	// The arranged positions were saved back.
	rr = doJSON(t, s, http.MethodGet, "/api/boards/roadmap", nil)
	var rec store.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Board.Items[0].X != resp.Board.Items[0].X {
		t.Error("arranged positions were not persisted")
	}
}

func TestArrangeStoredMissingBoard(t *testing.T) {
	s := newTestServer(t)

	rr := doJSON(t, s, http.MethodPost, "/api/boards/ghost/arrange", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
