package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/yigit/egresados/internal/pkg/logger"
)

// Orientation of the generated document.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Options controls page layout.
type Options struct {
	Orientation Orientation
	Format      string
}

// Converter turns an HTML document into PDF bytes.
type Converter interface {
	Convert(ctx context.Context, html string, opts Options) ([]byte, error)
}

// PlaywrightConverter renders HTML with headless Chromium.
type PlaywrightConverter struct {
	headless bool
	timeout  time.Duration
}

// NewPlaywrightConverter creates a converter. The browser is started per conversion.
func NewPlaywrightConverter(headless bool, timeout time.Duration) *PlaywrightConverter {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &PlaywrightConverter{headless: headless, timeout: timeout}
}

// Convert renders html to PDF.
func (c *PlaywrightConverter) Convert(ctx context.Context, html string, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer func() {
		if err := pw.Stop(); err != nil {
			logger.Warn().Err(err).Msg("Failed to stop playwright")
		}
	}()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(c.headless),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer page.Close()

	timeoutMs := float64(c.timeout.Milliseconds())
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < c.timeout {
			timeoutMs = float64(remaining.Milliseconds())
		}
	}
	page.SetDefaultTimeout(timeoutMs)

	if err := page.SetContent(html, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("could not set page content: %w", err)
	}

	format := opts.Format
	if format == "" {
		format = "A4"
	}

	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String(format),
		Landscape:       playwright.Bool(opts.Orientation == Landscape),
		PrintBackground: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    playwright.String("12mm"),
			Bottom: playwright.String("12mm"),
			Left:   playwright.String("10mm"),
			Right:  playwright.String("10mm"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate PDF: %w", err)
	}

	return pdfBytes, nil
}
