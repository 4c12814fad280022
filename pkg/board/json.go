package board

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal serializes a board to pretty-printed JSON bytes.
func Marshal(b Board) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// Unmarshal deserializes JSON bytes into a board.
func Unmarshal(data []byte) (Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("unmarshal board: %w", err)
	}
	return b, nil
}

// Read decodes a board from r.
func Read(r io.Reader) (Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Board{}, fmt.Errorf("read board: %w", err)
	}
	return Unmarshal(data)
}

// Write encodes the board as JSON and writes it to w.
// The output can be re-imported with [Read] for round-trip processing.
func Write(b Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return nil
}

// ReadFile reads a board from a JSON file at path.
func ReadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// WriteFile writes a board to a JSON file at path.
func WriteFile(b Board, path string) error {
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
