package handlers

import (
	"net/http"

	"github.com/andrewpaige1/todolists/store"
)

// DBHandler serves the todo list API on top of a Store.
type DBHandler struct {
	Store *store.Store
}

// Routes registers every endpoint on mux. protect wraps the routes that
// change data.
func (db *DBHandler) Routes(mux *http.ServeMux, protect func(http.HandlerFunc) http.HandlerFunc) {
	if protect == nil {
		protect = func(h http.HandlerFunc) http.HandlerFunc { return h }
	}

	mux.HandleFunc("GET /healthz", db.Health)

	// Lists
	mux.HandleFunc("GET /api/lists", db.GetLists)
	mux.HandleFunc("POST /api/lists", protect(db.CreateList))
	mux.HandleFunc("GET /api/lists/{listID}", db.GetListByID)
	mux.HandleFunc("PUT /api/lists/{listID}", protect(db.UpdateListByID))
	mux.HandleFunc("DELETE /api/lists/{listID}", protect(db.DeleteListByID))

	// Items of a list
	mux.HandleFunc("GET /api/lists/{listID}/items", db.GetItemsForList)
	mux.HandleFunc("POST /api/lists/{listID}/items", protect(db.CreateItem))
	mux.HandleFunc("DELETE /api/lists/{listID}/items/completed", protect(db.ClearCompletedItems))

	// Items
	mux.HandleFunc("GET /api/items/{itemID}", db.GetItemByID)
	mux.HandleFunc("PUT /api/items/{itemID}", protect(db.UpdateItemByID))
	mux.HandleFunc("DELETE /api/items/{itemID}", protect(db.DeleteItemByID))
}

func (db *DBHandler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := db.Store.DB().DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		writeError(w, r, "Health", http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
