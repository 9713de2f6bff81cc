package utils

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"jobportal/models"
	"jobportal/repository"
)

//go:embed templates/jobs_template.html
var jobsTemplateHTML string

var jobsTemplate = template.Must(template.New("jobs").Parse(jobsTemplateHTML))

// PDFRenderer turns a full HTML document into PDF bytes.
type PDFRenderer func(ctx context.Context, html string) ([]byte, error)

// BuildJobsHTML renders the job list document with the organization header.
func BuildJobsHTML(org *models.Organization, jobs []*models.Job, now time.Time) (string, error) {
	contacts := make([]string, 0, len(org.Contacts))
	for _, c := range org.Contacts {
		if c.Label != "" {
			contacts = append(contacts, c.Number+" ("+c.Label+")")
		} else {
			contacts = append(contacts, c.Number)
		}
	}

	data := models.JobsPDFData{
		Organization: org,
		Contacts:     strings.Join(contacts, ", "),
		Generated:    now.Format("02-Jan-2006 15:04"),
		Count:        len(jobs),
	}
	for i, job := range jobs {
		posted := "-"
		if !job.CreatedAt.IsZero() {
			posted = job.CreatedAt.Format("02-Jan-2006")
		}
		data.Jobs = append(data.Jobs, models.JobPDFRow{
			Index:       i + 1,
			Job:         job,
			Posted:      posted,
			Salary:      FormatSalary(job.Salary),
			SalaryWords: SalaryToWords(job.Salary),
		})
	}

	var buf bytes.Buffer
	if err := jobsTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render jobs template: %w", err)
	}
	return buf.String(), nil
}

// GenerateJobsPDF loads the jobs and organization and renders them to PDF.
func GenerateJobsPDF(ctx context.Context, repo *repository.ExportRepository, render PDFRenderer) ([]byte, error) {
	org, err := repo.GetOrganizationForPDF(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := repo.GetJobsForPDF(ctx)
	if err != nil {
		return nil, err
	}

	html, err := BuildJobsHTML(org, jobs, time.Now())
	if err != nil {
		return nil, err
	}
	return render(ctx, html)
}

// RenderPDFWithChrome prints the document through headless Chrome on A4 paper.
func RenderPDFWithChrome(ctx context.Context, html string) ([]byte, error) {
	tmpHTML := filepath.Join(os.TempDir(), "jobs_"+time.Now().Format("20060102150405.000000000")+".html")
	if err := os.WriteFile(tmpHTML, []byte(html), 0o644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdfBuf, nil
}
