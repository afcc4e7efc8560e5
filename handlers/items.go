package handlers

import (
	"net/http"
	"strconv"

	"github.com/andrewpaige1/todolists/store"
)

// GET /api/lists/{listID}/items?completed=true|false
func (db *DBHandler) GetItemsForList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, "GetItemsForList", http.StatusBadRequest, err.Error(), err)
		return
	}

	var filter store.ItemFilter
	if raw := r.URL.Query().Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, "GetItemsForList", http.StatusBadRequest, "completed must be true or false", err)
			return
		}
		filter.Completed = &completed
	}

	items, err := db.Store.ListItems(r.Context(), listID, filter)
	if err != nil {
		writeStoreError(w, r, "GetItemsForList", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /api/lists/{listID}/items
func (db *DBHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, "CreateItem", http.StatusBadRequest, err.Error(), err)
		return
	}

	var req struct {
		Content   string `json:"content"`
		Completed *bool  `json:"completed,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "CreateItem", http.StatusBadRequest, "invalid request body", err)
		return
	}

	item, err := db.Store.CreateItem(r.Context(), listID, store.NewItem{
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		writeStoreError(w, r, "CreateItem", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// DELETE /api/lists/{listID}/items/completed
func (db *DBHandler) ClearCompletedItems(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, "ClearCompletedItems", http.StatusBadRequest, err.Error(), err)
		return
	}

	removed, err := db.Store.ClearCompleted(r.Context(), listID)
	if err != nil {
		writeStoreError(w, r, "ClearCompletedItems", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": removed})
}

// GET /api/items/{itemID}
func (db *DBHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemID")
	if err != nil {
		writeError(w, r, "GetItemByID", http.StatusBadRequest, err.Error(), err)
		return
	}

	item, err := db.Store.GetItem(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "GetItemByID", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// PUT /api/items/{itemID}
func (db *DBHandler) UpdateItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemID")
	if err != nil {
		writeError(w, r, "UpdateItemByID", http.StatusBadRequest, err.Error(), err)
		return
	}

	var req struct {
		Content    *string `json:"content,omitempty"`
		Completed  *bool   `json:"completed,omitempty"`
		TodoListID *uint   `json:"todo_list_id,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "UpdateItemByID", http.StatusBadRequest, "invalid request body", err)
		return
	}

	item, err := db.Store.UpdateItem(r.Context(), id, store.ItemChanges{
		Content:    req.Content,
		Completed:  req.Completed,
		TodoListID: req.TodoListID,
	})
	if err != nil {
		writeStoreError(w, r, "UpdateItemByID", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DELETE /api/items/{itemID}
func (db *DBHandler) DeleteItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemID")
	if err != nil {
		writeError(w, r, "DeleteItemByID", http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := db.Store.DeleteItem(r.Context(), id); err != nil {
		writeStoreError(w, r, "DeleteItemByID", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
