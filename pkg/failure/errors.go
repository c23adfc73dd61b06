package failure

type Severity int

// pipeline control flow
const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

// ClassifiedError is implemented by every package-local error type.
// Callers decide whether to continue a batch from Severity alone.
type ClassifiedError interface {
	error
	Severity() Severity
}

// IsFatal reports whether err is a ClassifiedError with fatal severity.
// Unclassified errors are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	classified, ok := err.(ClassifiedError)
	if !ok {
		return true
	}
	return classified.Severity() == SeverityFatal
}
