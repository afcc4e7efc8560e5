package handlers

import (
	"net/http"

	"github.com/andrewpaige1/todolists/logger"
	"github.com/andrewpaige1/todolists/store"
	"github.com/andrewpaige1/todolists/utils"
)

// GET /api/lists
func (db *DBHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := db.Store.ListLists(r.Context())
	if err != nil {
		writeStoreError(w, r, "GetLists", err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// POST /api/lists
func (db *DBHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "CreateList", http.StatusBadRequest, "invalid request body", err)
		return
	}

	list, err := db.Store.CreateList(r.Context(), req.Title)
	if err != nil {
		writeStoreError(w, r, "CreateList", err)
		return
	}

	subject, _ := utils.GetSubject(r)
	logger.FromContext(r.Context()).Info("CreateList: created list", "list_id", list.ID, "subject", subject)
	writeJSON(w, http.StatusCreated, list)
}

// GET /api/lists/{listID}
func (db *DBHandler) GetListByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, "GetListByID", http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := db.Store.GetList(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "GetListByID", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// PUT /api/lists/{listID}
func (db *DBHandler) UpdateListByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, "UpdateListByID", http.StatusBadRequest, err.Error(), err)
		return
	}

	var req struct {
		Title *string `json:"title,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "UpdateListByID", http.StatusBadRequest, "invalid request body", err)
		return
	}

	list, err := db.Store.UpdateList(r.Context(), id, store.ListChanges{Title: req.Title})
	if err != nil {
		writeStoreError(w, r, "UpdateListByID", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DELETE /api/lists/{listID}
func (db *DBHandler) DeleteListByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, "DeleteListByID", http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := db.Store.DeleteList(r.Context(), id); err != nil {
		writeStoreError(w, r, "DeleteListByID", err)
		return
	}

	subject, _ := utils.GetSubject(r)
	logger.FromContext(r.Context()).Info("DeleteListByID: deleted list", "list_id", id, "subject", subject)
	w.WriteHeader(http.StatusNoContent)
}
