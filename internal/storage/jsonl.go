package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"positionScope/internal/model"
)

// JSONLWriter appends JSON-encoded values to a file, one per line.
type JSONLWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
}

// NewJSONLWriter opens (and truncates) the file at path, creating parent
// directories as needed.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}

	return &JSONLWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// Write appends one value as a JSON line.
func (w *JSONLWriter) Write(value interface{}) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

// Close flushes buffered lines and closes the file.
func (w *JSONLWriter) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return w.file.Close()
}

// JsonlSink writes descriptor records to a JSONL file.
type JsonlSink struct {
	writer *JSONLWriter
}

func NewJsonlSink(path string) (*JsonlSink, error) {
	writer, err := NewJSONLWriter(path)
	if err != nil {
		return nil, err
	}
	return &JsonlSink{writer: writer}, nil
}

// PutDescriptorBatch appends a batch of descriptor records as JSON lines.
func (s *JsonlSink) PutDescriptorBatch(_ context.Context, records []model.DescriptorRecord) error {
	for _, record := range records {
		if err := s.writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (s *JsonlSink) Close() error {
	return s.writer.Close()
}
