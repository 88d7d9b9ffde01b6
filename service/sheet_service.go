package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"ptr-shop/models"
)

// SheetServiceInterface defines the contract for printable catalog sheets.
type SheetServiceInterface interface {
	GenerateThemeSheet(ctx context.Context, themeID string) ([]byte, error)
}

// SheetService renders a printable PDF overview of a theme's designs from
// an HTML template using headless Chrome.
type SheetService struct {
	catalog CatalogServiceInterface
	fetcher FileFetcherInterface
}

// NewSheetService creates a new SheetService.
func NewSheetService(catalog CatalogServiceInterface, fetcher FileFetcherInterface) *SheetService {
	return &SheetService{
		catalog: catalog,
		fetcher: fetcher,
	}
}

// Ensure SheetService implements SheetServiceInterface
var _ SheetServiceInterface = (*SheetService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sheetDesign is one design cell on the sheet.
type sheetDesign struct {
	Name      string
	Sizes     []string
	Types     []string
	ImageData template.URL
}

const designsPerPage = 9

var sheetTemplate = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 0; }
  body { font-family: sans-serif; margin: 0; }
  .page { width: 210mm; min-height: 297mm; padding: 12mm; box-sizing: border-box; page-break-after: always; }
  h1 { font-size: 20pt; margin: 0 0 8mm 0; }
  .grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 6mm; }
  .cell { border: 1px solid #ccc; border-radius: 4px; padding: 4mm; text-align: center; }
  .cell img { max-width: 100%; max-height: 45mm; }
  .cell .name { font-weight: bold; margin-top: 2mm; }
  .cell .variants { font-size: 9pt; color: #555; }
</style>
</head>
<body>
{{- range $pi, $page := .Pages }}
<div class="page">
  <h1>{{ $.ThemeName }}</h1>
  <div class="grid">
  {{- range $page }}
    <div class="cell">
      {{- if .ImageData }}<img src="{{ .ImageData }}">{{ end }}
      <div class="name">{{ .Name }}</div>
      <div class="variants">{{ range $i, $s := .Sizes }}{{ if $i }}, {{ end }}{{ $s }}{{ end }}</div>
    </div>
  {{- end }}
  </div>
</div>
{{- end }}
</body>
</html>`))

// renderSheetHTML builds the sheet HTML for a theme, inlining thumbnails as
// base64 data URIs. A failed thumbnail fetch leaves the cell without an
// image rather than failing the sheet.
func (s *SheetService) renderSheetHTML(ctx context.Context, theme models.Theme) (string, error) {
	var designs []sheetDesign
	for _, design := range theme.Designs {
		cell := sheetDesign{
			Name:  design.Name,
			Sizes: VariantSizes(design),
			Types: VariantTypes(design),
		}
		if design.Thumbnail != "" {
			data, err := s.fetcher.Fetch(ctx, design.Thumbnail)
			if err != nil {
				log.Printf("⚠️  Warning: failed to fetch thumbnail for %s: %v", design.Name, err)
			} else {
				uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
				cell.ImageData = template.URL(uri)
			}
		}
		designs = append(designs, cell)
	}

	// Paginate into grid pages
	var pages [][]sheetDesign
	for i := 0; i < len(designs); i += designsPerPage {
		end := i + designsPerPage
		if end > len(designs) {
			end = len(designs)
		}
		pages = append(pages, designs[i:end])
	}

	templateData := struct {
		ThemeName string
		Pages     [][]sheetDesign
	}{
		ThemeName: theme.Name,
		Pages:     pages,
	}

	var buf bytes.Buffer
	if err := sheetTemplate.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute sheet template: %w", err)
	}

	return buf.String(), nil
}

// GenerateThemeSheet renders the theme's designs to a single PDF.
func (s *SheetService) GenerateThemeSheet(ctx context.Context, themeID string) ([]byte, error) {
	theme, ok := s.catalog.FindTheme(themeID)
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", themeID)
	}

	html, err := s.renderSheetHTML(ctx, theme)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69"; page breaks come from the CSS
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
