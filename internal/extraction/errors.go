package extraction

import "fmt"

// UnsupportedFormatError indicates the declared container kind is not
// one this extractor handles. It is fatal and never retried.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q (supported: pdf, docx)", e.Format)
}

// ExtractionError indicates the container itself could not be opened or
// read. The underlying cause is surfaced uninterpreted.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s document: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
