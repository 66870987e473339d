package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"transportbilty/form"
	"transportbilty/models"
	"transportbilty/repository"
	"transportbilty/utils"
)

type BiltyHandler struct {
	Repo         repository.BiltyRepository
	Timeout      time.Duration
	SuggestLimit int
}

func (h *BiltyHandler) timeout() time.Duration {
	if h.Timeout > 0 {
		return h.Timeout
	}
	return form.DefaultLookupTimeout
}

func (h *BiltyHandler) queryCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout())
}

// ListResult is the payload of GET /bilty.
type ListResult struct {
	Items      []*models.Bilty `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// CreateBilty handler. The total is recomputed from its components right
// before persisting, never trusted from the client.
func (h *BiltyHandler) CreateBilty(w http.ResponseWriter, r *http.Request) {
	var bilty models.Bilty
	if err := json.NewDecoder(r.Body).Decode(&bilty); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if strings.TrimSpace(bilty.GRNo) == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "GR number is required",
		})
		return
	}

	now := time.Now().UTC()
	if bilty.BiltyDate.IsZero() {
		bilty.BiltyDate = now
	}
	if bilty.InvoiceDate.IsZero() {
		bilty.InvoiceDate = now
	}
	if bilty.PaymentMode == "" {
		bilty.PaymentMode = models.PaymentToPay
	}
	if bilty.DeliveryType == "" {
		bilty.DeliveryType = models.DeliveryGodown
	}

	bilty.FreightAmount = form.Round2(bilty.FreightAmount)
	bilty.TotalAmount = form.Round2(bilty.FreightAmount +
		bilty.LabourCharge + bilty.BiltyCharge + bilty.TollTax + bilty.PF + bilty.OtherCharge)

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	if err := h.Repo.CreateBilty(ctx, &bilty); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create bilty: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Bilty created",
		Data:    bilty,
	})
}

// ListBilty handler: page, page_size, sort, dir, search.
func (h *BiltyHandler) ListBilty(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	pageSize := 10
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = v
	}
	sortField := q.Get("sort")
	if sortField == "" {
		sortField = "bilty_date"
	}
	if !repository.IsSortField(sortField) {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: fmt.Sprintf("cannot sort by %q", sortField),
		})
		return
	}

	params := repository.ListParams{
		Page:          page,
		PageSize:      pageSize,
		SortField:     sortField,
		SortAscending: q.Get("dir") == "asc",
		Search:        q.Get("search"),
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	items, total, err := h.Repo.ListBilty(ctx, params)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load bilty records: " + err.Error(),
			Data:    ListResult{Items: []*models.Bilty{}, Page: page, PageSize: pageSize},
		})
		return
	}
	if items == nil {
		items = []*models.Bilty{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: ListResult{
			Items:      items,
			TotalCount: total,
			Page:       page,
			PageSize:   pageSize,
		},
	})
}

// GetBiltyByID handler
func (h *BiltyHandler) GetBiltyByID(w http.ResponseWriter, r *http.Request, id string) {
	biltyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid bilty id"})
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	bilty, err := h.Repo.GetBiltyByID(ctx, biltyID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if bilty == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Bilty not found"})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bilty})
}

// MostRecent returns the newest record, used to seed the standing charge
// fields when a fresh entry form opens.
func (h *BiltyHandler) MostRecent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.queryCtx(r)
	defer cancel()
	bilty, err := h.Repo.MostRecentBilty(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if bilty == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "No bilty records yet"})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bilty})
}

// DeleteBilty handler. Write failures surface to the caller; the record list
// is left as it was.
func (h *BiltyHandler) DeleteBilty(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Repo.DeleteBilty(ctx, biltyID); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to delete bilty: " + err.Error(),
		})
		return
	}

	// Best-effort cleanup of the uploaded print copy.
	if utils.R2Enabled() {
		if err := utils.DeleteFromR2(fmt.Sprintf("bilty_%d.pdf", biltyID)); err != nil {
			log.Printf("failed to delete R2 copy for bilty %d: %v", biltyID, err)
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Bilty deleted successfully"})
}

// Suggest handler: distinct prior values of a field matching a prefix. Store
// failures degrade to an empty list, never an error, so a flaky read can't
// break typing.
func (h *BiltyHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if !repository.IsSuggestField(field) {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: fmt.Sprintf("no suggestions for field %q", field),
		})
		return
	}

	prefix := r.URL.Query().Get("q")
	if len(strings.TrimSpace(prefix)) < form.MinSuggestLen {
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: []string{}})
		return
	}

	limit := h.SuggestLimit
	if limit <= 0 {
		limit = form.DefaultSuggestLimit
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	values, err := h.Repo.Suggest(ctx, field, prefix, limit)
	if err != nil || values == nil {
		values = []string{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: values})
}

// Lookup handler: the autofill projection for a trigger field. No match and
// store failures both come back as an empty patch.
func (h *BiltyHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	fields, ok := form.LookupFields(field)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: fmt.Sprintf("field %q does not trigger a lookup", field),
		})
		return
	}

	value := r.URL.Query().Get("value")
	if strings.TrimSpace(value) == "" {
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{}})
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	rec, err := h.Repo.LatestByField(ctx, field, value)
	if err != nil || rec == nil {
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{}})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: form.Projection(rec, fields)})
}
