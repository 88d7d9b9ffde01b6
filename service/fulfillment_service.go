package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"ptr-shop/models"
	"ptr-shop/utils"
)

// ErrFulfillmentInProgress is returned when a run is requested while another
// one is still in flight. Exactly one fulfillment runs at a time.
var ErrFulfillmentInProgress = errors.New("a download is already in progress")

// ErrNothingProcessed is returned when every cart item failed and no archive
// could be produced.
var ErrNothingProcessed = errors.New("no files were processed successfully")

// ProgressFunc receives per-item progress updates during a fulfillment run.
type ProgressFunc func(models.Progress)

// FulfillmentServiceInterface defines the contract for turning cart line
// items into a downloadable ZIP archive.
type FulfillmentServiceInterface interface {
	Run(ctx context.Context, items []models.CartItem, progress ProgressFunc) (*models.FulfillmentResult, []byte, error)
}

// FulfillmentService iterates cart items strictly in order, fetches each
// item's PDF, duplicates its pages to match the requested quantity, and
// bundles the results into a single compressed archive. A failing item is
// skipped and logged; it never aborts the batch. The cart itself is never
// mutated.
type FulfillmentService struct {
	fetcher    FileFetcherInterface
	duplicator PDFDuplicatorInterface
	notifier   NotifierInterface
	now        func() time.Time
	inFlight   atomic.Bool
}

// NewFulfillmentService creates a new FulfillmentService.
func NewFulfillmentService(fetcher FileFetcherInterface, duplicator PDFDuplicatorInterface, notifier NotifierInterface) *FulfillmentService {
	return &FulfillmentService{
		fetcher:    fetcher,
		duplicator: duplicator,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Ensure FulfillmentService implements FulfillmentServiceInterface
var _ FulfillmentServiceInterface = (*FulfillmentService)(nil)

// archiveEntry buffers one archive entry. Entries keep first-seen order;
// a later item with the same name replaces the earlier bytes (last-write-wins).
type archiveEntry struct {
	name string
	data []byte
}

// Run processes the given items and returns the run summary and the ZIP
// archive bytes. An empty item list is a no-op: nil result, nil archive,
// nil error, no notification. When every item fails, the per-item outcomes
// are still returned alongside ErrNothingProcessed. Cancellation is honored
// between items; partial archive state is discarded.
func (s *FulfillmentService) Run(ctx context.Context, items []models.CartItem, progress ProgressFunc) (*models.FulfillmentResult, []byte, error) {
	if len(items) == 0 {
		return nil, nil, nil
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, nil, ErrFulfillmentInProgress
	}
	defer s.inFlight.Store(false)

	if progress == nil {
		progress = func(models.Progress) {}
	}

	result := &models.FulfillmentResult{
		ArchiveName: utils.ArchiveName(s.now()),
	}

	var entries []archiveEntry
	entryIndex := make(map[string]int)
	total := len(items)

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		progress(models.Progress{
			Index:      i + 1,
			Total:      total,
			DesignName: item.DesignName,
			Fraction:   float64(i) / float64(total),
		})
		log.Printf("📦 Processing %s (%d/%d)...", item.DesignName, i+1, total)

		outcome := s.processItem(ctx, item)
		if outcome.Succeeded() {
			if idx, seen := entryIndex[outcome.entry.name]; seen {
				entries[idx] = outcome.entry
			} else {
				entryIndex[outcome.entry.name] = len(entries)
				entries = append(entries, outcome.entry)
			}
			result.SuccessCount++
		} else {
			log.Printf("❌ Error processing %s: %s", item.DesignName, outcome.Error)
		}
		result.Outcomes = append(result.Outcomes, outcome.ItemOutcome)

		progress(models.Progress{
			Index:      i + 1,
			Total:      total,
			DesignName: item.DesignName,
			Fraction:   float64(i+1) / float64(total),
		})
	}

	if result.SuccessCount == 0 {
		s.notifier.Notify(SeverityError, "Download failed: "+ErrNothingProcessed.Error())
		return result, nil, ErrNothingProcessed
	}

	archive, err := buildArchive(entries)
	if err != nil {
		s.notifier.Notify(SeverityError, "Download failed: "+err.Error())
		return nil, nil, err
	}

	log.Printf("🎉 Fulfillment completed: %d/%d item(s) in %s (%d bytes)",
		result.SuccessCount, total, result.ArchiveName, len(archive))
	s.notifier.Notify(SeveritySuccess, fmt.Sprintf("Downloaded %d file(s)!", result.SuccessCount))

	return result, archive, nil
}

// itemResult pairs the recorded outcome with the buffered archive entry.
type itemResult struct {
	models.ItemOutcome
	entry archiveEntry
}

// processItem fetches and prepares a single item. All failures are absorbed
// into the outcome; nothing escapes to abort the batch.
func (s *FulfillmentService) processItem(ctx context.Context, item models.CartItem) itemResult {
	outcome := itemResult{
		ItemOutcome: models.ItemOutcome{ItemID: item.ID, DesignName: item.DesignName},
	}

	pdfBytes, err := s.fetcher.Fetch(ctx, item.File)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	if len(pdfBytes) == 0 {
		outcome.Error = "PDF file is empty"
		return outcome
	}
	log.Printf("Fetched %s: %d bytes, qty=%d", item.File, len(pdfBytes), item.Qty)

	finalBytes := pdfBytes
	if item.Qty > 1 {
		duplicated, err := s.duplicator.Duplicate(pdfBytes, item.Qty)
		if err != nil {
			// Duplication is best-effort; ship the original file instead.
			log.Printf("⚠️  PDF duplication failed for %s, using original file: %v", item.DesignName, err)
		} else {
			finalBytes = duplicated
		}
	}

	name := utils.EntryName(item)
	outcome.EntryName = name
	outcome.Bytes = len(finalBytes)
	outcome.entry = archiveEntry{name: name, data: finalBytes}
	log.Printf("✓ Added to ZIP: %s (%d bytes)", name, len(finalBytes))

	return outcome
}

// buildArchive serializes the buffered entries into a DEFLATE-compressed ZIP.
func buildArchive(entries []archiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", entry.name, err)
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", entry.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}
