package storage

// Document is one serialized graph ready to persist.
type Document struct {
	// CanonicalURL names the output file.
	CanonicalURL string
	// SourceURL is the manifest URL as written, for diagnostics.
	SourceURL string
	// JSON is the serialized graph document.
	JSON []byte
	// ScriptTag is written as a sibling .html file when non-empty.
	ScriptTag []byte
}

type WriteResult struct {
	urlHash     string // identity (filename without extension)
	path        string
	scriptPath  string
	contentHash string
}

func NewWriteResult(
	urlHash string,
	path string,
	scriptPath string,
	contentHash string,
) WriteResult {
	return WriteResult{
		urlHash:     urlHash,
		path:        path,
		scriptPath:  scriptPath,
		contentHash: contentHash,
	}
}

func (w *WriteResult) URLHash() string {
	return w.urlHash
}

func (w *WriteResult) Path() string {
	return w.path
}

// ScriptPath is empty when no script tag was written.
func (w *WriteResult) ScriptPath() string {
	return w.scriptPath
}

func (w *WriteResult) ContentHash() string {
	return w.contentHash
}
