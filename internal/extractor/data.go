package extractor

// Block is one application/ld+json script element found in a document.
// Index is the position among ld+json scripts in document order.
type Block struct {
	Index int
	ID    string
	Raw   string
	// Value holds the decoded payload; numbers are json.Number.
	Value any
	// Err is set when Raw is not valid JSON; Value is nil then.
	Err *ExtractionError
}

// ExtractionResult holds every block of a document, including malformed ones.
type ExtractionResult struct {
	Blocks []Block
}

// Values returns the decoded payloads of the well-formed blocks in order.
func (r ExtractionResult) Values() []any {
	values := make([]any, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if b.Err == nil {
			values = append(values, b.Value)
		}
	}
	return values
}

// Failed returns the blocks whose payload could not be decoded.
func (r ExtractionResult) Failed() []Block {
	var failed []Block
	for _, b := range r.Blocks {
		if b.Err != nil {
			failed = append(failed, b)
		}
	}
	return failed
}
