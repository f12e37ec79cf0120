// Package ingest turns uploaded documents into keyword-tagged knowledge
// entries: text extraction, chunking, keyword derivation, and entry
// creation.
package ingest

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/campus-assistant/backend/internal/apperr"
	"github.com/campus-assistant/backend/internal/knowledge"
)

const noTextHint = "No selectable text found in the document (likely scanned). " +
	"Please upload a text-based document instead."

// Pipeline materializes knowledge entries from stored documents.
type Pipeline struct {
	Extractor   Extractor
	Store       *knowledge.Store
	ChunkSize   int
	MaxChunks   int
	MaxKeywords int
	Log         *logrus.Entry
}

// Result is the created entry plus a short preview of the extracted text.
type Result struct {
	Entry   knowledge.Entry
	Preview string
}

// Ingest extracts text from the document at path, derives responses and
// keywords, and appends the resulting entry to the admin tier. storedName
// is recorded as the entry's source document; title and keywordsCSV are the
// optional user-supplied overrides.
func (p *Pipeline) Ingest(path, storedName, title, keywordsCSV string) (*Result, error) {
	text, err := p.Extractor.Extract(path)
	if err != nil {
		return nil, apperr.Internal("Failed to extract document text", err)
	}
	text = strings.ReplaceAll(text, "\x00", "")

	responses := Chunk(text, p.ChunkSize, p.MaxChunks)
	if len(responses) == 0 {
		return nil, apperr.Extraction(noTextHint, nil)
	}

	if title == "" {
		title = strings.TrimSuffix(storedName, filepath.Ext(storedName))
	}

	keywords := DeriveKeywords(keywordsCSV, title, text, p.MaxKeywords)
	if len(keywords) == 0 {
		return nil, apperr.Validation("keywords is required (comma separated)")
	}

	entry := knowledge.Entry{
		ID:             uuid.NewString(),
		Title:          title,
		Keywords:       keywords,
		Responses:      responses,
		CreatedAt:      time.Now(),
		SourceDocument: storedName,
	}
	entry, err = p.Store.Add(entry)
	if err != nil {
		return nil, err
	}

	p.Log.WithFields(logrus.Fields{
		"entry":    entry.ID,
		"document": storedName,
		"segments": len(responses),
		"keywords": len(keywords),
	}).Info("Ingested document into knowledge base")

	return &Result{Entry: entry, Preview: preview(responses[0], 200)}, nil
}

func preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max])
	}
	return text
}
