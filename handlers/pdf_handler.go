package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"jobportal/logger"
	"jobportal/repository"
	"jobportal/utils"
)

type PDFHandler struct {
	Repo     *repository.ExportRepository
	SavePath string
	Render   utils.PDFRenderer
}

// JobsPDF renders the current job list to a PDF file under SavePath.
func (h *PDFHandler) JobsPDF(w http.ResponseWriter, r *http.Request) {
	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeInternal(w, r, "create pdf directory", err)
		return
	}

	render := h.Render
	if render == nil {
		render = utils.RenderPDFWithChrome
	}

	pdfBytes, err := utils.GenerateJobsPDF(r.Context(), h.Repo, render)
	if err != nil {
		writeInternal(w, r, "generate jobs pdf", err)
		return
	}

	filename := fmt.Sprintf("jobs_%d.pdf", time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(saveDir, filename), pdfBytes, 0o644); err != nil {
		writeInternal(w, r, "save jobs pdf", err)
		return
	}

	logger.FromContext(r.Context()).Info("jobs pdf generated", "file", filename, "bytes", len(pdfBytes))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"file":    filename,
	})
}
