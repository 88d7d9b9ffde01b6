package service

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFDuplicatorInterface defines the contract for page duplication.
type PDFDuplicatorInterface interface {
	Duplicate(src []byte, qty int) ([]byte, error)
}

// PDFDuplicator builds a new PDF containing the source's pages repeated a
// requested number of times. Validation is relaxed so encrypted or slightly
// malformed sources are still accepted where possible; callers fall back to
// the original bytes when duplication fails.
type PDFDuplicator struct {
	conf *model.Configuration
}

// NewPDFDuplicator creates a new PDFDuplicator.
func NewPDFDuplicator() *PDFDuplicator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFDuplicator{conf: conf}
}

// Ensure PDFDuplicator implements PDFDuplicatorInterface
var _ PDFDuplicatorInterface = (*PDFDuplicator)(nil)

// Duplicate returns a PDF holding src's pages repeated qty times in order.
// qty <= 1 returns src unchanged without parsing it.
func (d *PDFDuplicator) Duplicate(src []byte, qty int) ([]byte, error) {
	if qty <= 1 {
		return src, nil
	}

	pageCount, err := api.PageCount(bytes.NewReader(src), d.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read source PDF: %w", err)
	}
	log.Printf("Original PDF has %d page(s), duplicating %d times", pageCount, qty)

	// Merging qty readers of the same source appends its pages end to end.
	readers := make([]io.ReadSeeker, qty)
	for i := range readers {
		readers[i] = bytes.NewReader(src)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, d.conf); err != nil {
		return nil, fmt.Errorf("failed to duplicate PDF pages: %w", err)
	}

	out := buf.Bytes()
	if newCount, err := api.PageCount(bytes.NewReader(out), d.conf); err == nil {
		log.Printf("New PDF has %d page(s)", newCount)
	}

	return out, nil
}
