package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"transportbilty/form"
	"transportbilty/models"
	"transportbilty/repository"
	"transportbilty/utils"
)

type PDFHandler struct {
	Repo    repository.BiltyRepository
	Header  models.PrintHeader
	Timeout time.Duration
}

func (h *PDFHandler) queryCtx(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = form.DefaultLookupTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

// BiltyPDF renders the three-copy print of a bilty. By default the PDF bytes
// stream back inline; with ?upload=1 the file goes to R2 instead and the
// public URL is returned. The record fetch runs under the bounded query
// timeout; only the Chrome render gets the full request context.
func (h *PDFHandler) BiltyPDF(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "missing bilty id"})
		return
	}
	biltyID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid bilty id"})
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	bilty, err := h.Repo.GetBiltyByID(ctx, biltyID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to load bilty: " + err.Error(),
		})
		return
	}
	if bilty == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Bilty not found"})
		return
	}

	pdfBytes, err := utils.GenerateBiltyPDF(r.Context(), h.Header, bilty)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to generate PDF: " + err.Error(),
		})
		return
	}

	if r.URL.Query().Get("upload") == "1" {
		key := fmt.Sprintf("bilty_%d.pdf", biltyID)
		fileURL, err := utils.UploadToR2(pdfBytes, key)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "failed to upload PDF: " + err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Data:    map[string]string{"file": key, "url": fileURL},
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="bilty_%d.pdf"`, biltyID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
