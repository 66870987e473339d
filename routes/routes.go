package routes

import (
	"net/http"
	"strings"

	"transportbilty/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	biltyHandler *handlers.BiltyHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// Form pipeline routes
	http.Handle("/suggest", withCORS(http.HandlerFunc(handlers.RecoverWrapper(biltyHandler.Suggest))))
	http.Handle("/lookup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(biltyHandler.Lookup))))

	// Print route
	http.Handle("/bilty/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.BiltyPDF))))

	// Charge-seed source for a fresh entry form
	http.Handle("/bilty/latest", withCORS(http.HandlerFunc(handlers.RecoverWrapper(biltyHandler.MostRecent))))

	// Bilty routes
	http.Handle("/bilty", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			biltyHandler.CreateBilty(w, r)
		case http.MethodGet:
			biltyHandler.ListBilty(w, r)
		case http.MethodDelete:
			biltyHandler.DeleteBilty(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Get bilty by ID
	http.Handle("/bilty/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/bilty/")
		if id != "" {
			biltyHandler.GetBiltyByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))
}
