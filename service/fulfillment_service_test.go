package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptr-shop/models"
)

// fakeFetcher serves canned responses per file ref.
type fakeFetcher struct {
	files  map[string][]byte
	errors map[string]error
}

func (f *fakeFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err, ok := f.errors[ref]; ok {
		return nil, err
	}
	if data, ok := f.files[ref]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("HTTP 404: not found")
}

// repeatDuplicator stands in for the PDF duplicator: it repeats the raw
// bytes qty times, which keeps the multiplication observable.
type repeatDuplicator struct{}

func (repeatDuplicator) Duplicate(src []byte, qty int) ([]byte, error) {
	if qty <= 1 {
		return src, nil
	}
	return bytes.Repeat(src, qty), nil
}

// failingDuplicator always errors, to exercise the original-bytes fallback.
type failingDuplicator struct{}

func (failingDuplicator) Duplicate(src []byte, qty int) ([]byte, error) {
	return nil, errors.New("parse failure")
}

// recordingNotifier captures emitted notifications.
type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(severity Severity, message string) {
	n.messages = append(n.messages, string(severity)+": "+message)
}

func newTestService(fetcher FileFetcherInterface, dup PDFDuplicatorInterface) (*FulfillmentService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	s := NewFulfillmentService(fetcher, dup, notifier)
	s.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return s, notifier
}

func item(id int64, theme, design, size, typ, file string, qty int) models.CartItem {
	return models.CartItem{
		ID: id, ThemeID: "t1", ThemeName: theme,
		DesignID: design, DesignName: design,
		Size: size, Type: typ, Qty: qty, File: file,
	}
}

func archiveEntries(t *testing.T, archive []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	entries := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		entries[f.Name] = data
	}
	return entries
}

func TestRun_EmptyCartIsNoOp(t *testing.T) {
	s, notifier := newTestService(&fakeFetcher{}, repeatDuplicator{})

	result, archive, err := s.Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Nil(t, archive)
	assert.Empty(t, notifier.messages)
}

func TestRun_BundlesAllItems(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{
		"/files/a.pdf": []byte("PDF-A"),
		"/files/b.pdf": []byte("PDF-B"),
	}}
	s, notifier := newTestService(fetcher, repeatDuplicator{})

	items := []models.CartItem{
		item(1, "ThemeX", "Mandala", "A4", "Line", "/files/a.pdf", 3),
		item(2, "ThemeX", "Floral", "A5", "Dot", "/files/b.pdf", 1),
	}

	result, archive, err := s.Run(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, "PTRShop_2026-03-14.zip", result.ArchiveName)

	entries := archiveEntries(t, archive)
	require.Len(t, entries, 2)
	// qty=3 item is multiplied, qty=1 item is passed through untouched
	assert.Equal(t, bytes.Repeat([]byte("PDF-A"), 3), entries["ThemeX_Mandala_A4_Line.pdf"])
	assert.Equal(t, []byte("PDF-B"), entries["ThemeX_Floral_A5_Dot.pdf"])

	assert.Contains(t, notifier.messages, "success: Downloaded 2 file(s)!")
}

func TestRun_FailingItemIsSkipped(t *testing.T) {
	fetcher := &fakeFetcher{
		files: map[string][]byte{
			"/files/a.pdf": []byte("PDF-A"),
			"/files/c.pdf": []byte("PDF-C"),
		},
		errors: map[string]error{
			"/files/b.pdf": errors.New("HTTP 500: Internal Server Error"),
		},
	}
	s, _ := newTestService(fetcher, repeatDuplicator{})

	items := []models.CartItem{
		item(1, "T", "A", "A4", "Line", "/files/a.pdf", 1),
		item(2, "T", "B", "A4", "Line", "/files/b.pdf", 1),
		item(3, "T", "C", "A4", "Line", "/files/c.pdf", 1),
	}

	var fractions []float64
	result, archive, err := s.Run(context.Background(), items, func(p models.Progress) {
		fractions = append(fractions, p.Fraction)
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, result.Outcomes, 3)
	assert.True(t, result.Outcomes[0].Succeeded())
	assert.False(t, result.Outcomes[1].Succeeded())
	assert.Contains(t, result.Outcomes[1].Error, "HTTP 500")
	assert.True(t, result.Outcomes[2].Succeeded())

	entries := archiveEntries(t, archive)
	require.Len(t, entries, 2)
	assert.NotContains(t, entries, "T_B_A4_Line.pdf")

	// Progress reaches 100% even though item 2 failed
	require.NotEmpty(t, fractions)
	assert.Equal(t, 1.0, fractions[len(fractions)-1])
}

func TestRun_EmptyFileIsAnItemError(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{
		"/files/empty.pdf": {},
		"/files/ok.pdf":    []byte("PDF"),
	}}
	s, _ := newTestService(fetcher, repeatDuplicator{})

	items := []models.CartItem{
		item(1, "T", "Empty", "A4", "Line", "/files/empty.pdf", 1),
		item(2, "T", "OK", "A4", "Line", "/files/ok.pdf", 1),
	}

	result, _, err := s.Run(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Contains(t, result.Outcomes[0].Error, "empty")
}

func TestRun_AllItemsFailing(t *testing.T) {
	fetcher := &fakeFetcher{errors: map[string]error{
		"/files/a.pdf": errors.New("HTTP 404: Not Found"),
	}}
	s, notifier := newTestService(fetcher, repeatDuplicator{})

	items := []models.CartItem{
		item(1, "T", "A", "A4", "Line", "/files/a.pdf", 1),
	}

	result, archive, err := s.Run(context.Background(), items, nil)
	require.ErrorIs(t, err, ErrNothingProcessed)
	assert.Nil(t, archive)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.SuccessCount)
	require.Len(t, result.Outcomes, 1)
	assert.False(t, result.Outcomes[0].Succeeded())
	assert.Contains(t, result.Outcomes[0].Error, "HTTP 404")
	assert.Contains(t, notifier.messages, "error: Download failed: no files were processed successfully")
}

func TestRun_DuplicationFailureFallsBackToOriginal(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{
		"/files/a.pdf": []byte("ORIGINAL"),
	}}
	s, _ := newTestService(fetcher, failingDuplicator{})

	items := []models.CartItem{
		item(1, "T", "A", "A4", "Line", "/files/a.pdf", 4),
	}

	result, archive, err := s.Run(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)

	entries := archiveEntries(t, archive)
	assert.Equal(t, []byte("ORIGINAL"), entries["T_A_A4_Line.pdf"])
}

func TestRun_DuplicateEntryNamesLastWriteWins(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{
		"/files/a.pdf": []byte("FIRST"),
		"/files/b.pdf": []byte("SECOND"),
	}}
	s, _ := newTestService(fetcher, repeatDuplicator{})

	// Distinct design ids colliding on the display name quadruple
	items := []models.CartItem{
		{ID: 1, ThemeName: "T", DesignID: "d1", DesignName: "Same", Size: "A4", Type: "Line", Qty: 1, File: "/files/a.pdf"},
		{ID: 2, ThemeName: "T", DesignID: "d2", DesignName: "Same", Size: "A4", Type: "Line", Qty: 1, File: "/files/b.pdf"},
	}

	result, archive, err := s.Run(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)

	entries := archiveEntries(t, archive)
	require.Len(t, entries, 1)
	assert.Equal(t, []byte("SECOND"), entries["T_Same_A4_Line.pdf"])
}

func TestRun_SecondConcurrentRunRefused(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{"/files/a.pdf": []byte("PDF")}}
	s, _ := newTestService(fetcher, repeatDuplicator{})

	items := []models.CartItem{item(1, "T", "A", "A4", "Line", "/files/a.pdf", 1)}

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		s.Run(context.Background(), items, func(models.Progress) {
			select {
			case <-started:
			default:
				close(started)
				<-release
			}
		})
	}()

	<-started
	_, _, err := s.Run(context.Background(), items, nil)
	assert.ErrorIs(t, err, ErrFulfillmentInProgress)
	close(release)
}

func TestRun_CancelledBetweenItems(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{
		"/files/a.pdf": []byte("PDF-A"),
		"/files/b.pdf": []byte("PDF-B"),
	}}
	s, _ := newTestService(fetcher, repeatDuplicator{})

	ctx, cancel := context.WithCancel(context.Background())
	items := []models.CartItem{
		item(1, "T", "A", "A4", "Line", "/files/a.pdf", 1),
		item(2, "T", "B", "A4", "Line", "/files/b.pdf", 1),
	}

	_, archive, err := s.Run(ctx, items, func(p models.Progress) {
		if p.Index == 1 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, archive)
}
