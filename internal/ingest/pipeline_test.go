package ingest_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campus-assistant/backend/internal/apperr"
	"github.com/campus-assistant/backend/internal/ingest"
	"github.com/campus-assistant/backend/internal/knowledge"
	"github.com/campus-assistant/backend/internal/storage"
)

// Mocks

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("service", "test")
}

func setupPipeline(t *testing.T) (*ingest.Pipeline, *MockExtractor, *knowledge.Store) {
	t.Helper()
	file, err := storage.NewJSONFile(filepath.Join(t.TempDir(), "knowledge.json"))
	require.NoError(t, err)
	store, err := knowledge.NewStore(file, testLog())
	require.NoError(t, err)

	extractor := new(MockExtractor)
	pipe := &ingest.Pipeline{
		Extractor:   extractor,
		Store:       store,
		ChunkSize:   800,
		MaxChunks:   10,
		MaxKeywords: 25,
		Log:         testLog(),
	}
	return pipe, extractor, store
}

func TestIngestCreatesEntry(t *testing.T) {
	pipe, extractor, store := setupPipeline(t)
	extractor.On("Extract", "/tmp/handbook.pdf").Return("Para one.\n\nPara two.", nil)

	result, err := pipe.Ingest("/tmp/handbook.pdf", "handbook.pdf", "Student Handbook", "rules,conduct")
	require.NoError(t, err)

	assert.Equal(t, []string{"Para one.", "Para two."}, result.Entry.Responses)
	assert.Equal(t, "Student Handbook", result.Entry.Title)
	assert.Equal(t, "handbook.pdf", result.Entry.SourceDocument)
	assert.Equal(t, "Para one.", result.Preview)
	assert.Contains(t, result.Entry.Keywords, "rules")
	assert.Contains(t, result.Entry.Keywords, "conduct")
	assert.Contains(t, result.Entry.Keywords, "student")

	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, result.Entry.ID, all[0].ID)
}

func TestIngestTitleDefaultsToFilename(t *testing.T) {
	pipe, extractor, _ := setupPipeline(t)
	extractor.On("Extract", mock.Anything).Return("Campus shuttle schedule details.", nil)

	result, err := pipe.Ingest("/tmp/shuttle-times.txt", "shuttle-times.txt", "", "")
	require.NoError(t, err)

	assert.Equal(t, "shuttle-times", result.Entry.Title)
}

func TestIngestWhitespaceOnlyTextFails(t *testing.T) {
	pipe, extractor, store := setupPipeline(t)
	extractor.On("Extract", mock.Anything).Return("   \n\n \t ", nil)

	_, err := pipe.Ingest("/tmp/scan.pdf", "scan.pdf", "", "")

	require.Error(t, err)
	assert.Equal(t, apperr.CodeExtraction, apperr.CodeOf(err))
	assert.Contains(t, apperr.MessageOf(err), "scanned")
	assert.Empty(t, store.All())
}

func TestIngestExtractionErrorSurfaces(t *testing.T) {
	pipe, extractor, store := setupPipeline(t)
	extractor.On("Extract", mock.Anything).Return("", assert.AnError)

	_, err := pipe.Ingest("/tmp/broken.pdf", "broken.pdf", "", "")

	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
	assert.Empty(t, store.All())
}

func TestIngestStripsNullCharacters(t *testing.T) {
	pipe, extractor, _ := setupPipeline(t)
	extractor.On("Extract", mock.Anything).Return("abc\x00def", nil)

	result, err := pipe.Ingest("/tmp/doc.txt", "doc.txt", "Doc", "docs")
	require.NoError(t, err)

	assert.Equal(t, []string{"abcdef"}, result.Entry.Responses)
}

func TestIngestNoKeywordsFails(t *testing.T) {
	pipe, extractor, store := setupPipeline(t)
	// Body and title yield nothing usable for keywords.
	extractor.On("Extract", mock.Anything).Return("of the and or", nil)

	_, err := pipe.Ingest("/tmp/a.txt", "a.txt", "a", "")

	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	assert.Empty(t, store.All())
}

func TestIngestPreviewTruncatedTo200(t *testing.T) {
	pipe, extractor, _ := setupPipeline(t)
	long := ""
	for i := 0; i < 60; i++ {
		long += "parking "
	}
	extractor.On("Extract", mock.Anything).Return(long, nil)

	result, err := pipe.Ingest("/tmp/p.txt", "p.txt", "Parking", "")
	require.NoError(t, err)

	assert.Len(t, []rune(result.Preview), 200)
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, ingest.SupportedExtension("a.pdf"))
	assert.True(t, ingest.SupportedExtension("a.TXT"))
	assert.True(t, ingest.SupportedExtension("a.md"))
	assert.True(t, ingest.SupportedExtension("a.html"))
	assert.False(t, ingest.SupportedExtension("a.exe"))
	assert.False(t, ingest.SupportedExtension("archive.zip"))
}

func TestFileExtractorPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, writeFile(path, "Plain text body."))

	text, err := ingest.FileExtractor{}.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Plain text body.", text)
}

func TestFileExtractorHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	doc := "<html><head><style>body{}</style><script>var x;</script></head>" +
		"<body><h1>Campus Map</h1><p>Building A is north.</p></body></html>"
	require.NoError(t, writeFile(path, doc))

	text, err := ingest.FileExtractor{}.Extract(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Campus Map")
	assert.Contains(t, text, "Building A is north.")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "body{}")
}
