package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/tasklists/internal/formatter"
	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
)

// listSummary is a list without its tasks, as returned by the collection route.
type listSummary struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaskCount   int       `json:"task_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func summarize(l models.List) listSummary {
	return listSummary{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		TaskCount:   len(l.Tasks),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type createListRequest struct {
	Name        *string `json:"name"`
	Description string  `json:"description"`
}

func (a *API) listLists(w http.ResponseWriter, r *http.Request) {
	lists := a.manager.Lists()
	out := make([]listSummary, len(lists))
	for i, l := range lists {
		out[i] = summarize(l)
	}
	a.respondCount(w, out, len(out))
}

func (a *API) createList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decode(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	if req.Name == nil {
		a.fail(w, r, fmt.Errorf("%w: name is required", shared.ErrValidation))
		return
	}

	list, err := a.manager.CreateList(*req.Name, req.Description)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !a.persist(w, r) {
		return
	}
	a.respond(w, http.StatusCreated, list)
}

func (a *API) getList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	list, ok := a.manager.List(id)
	if !ok {
		a.fail(w, r, fmt.Errorf("%w: list %d", shared.ErrNotFound, id))
		return
	}
	a.respond(w, http.StatusOK, list)
}

func (a *API) updateList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	var patch models.ListPatch
	if err := decode(w, r, &patch); err != nil {
		a.fail(w, r, err)
		return
	}

	list, err := a.manager.UpdateList(id, patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !a.persist(w, r) {
		return
	}
	a.respond(w, http.StatusOK, list)
}

func (a *API) deleteList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	if err := a.manager.DeleteList(id); err != nil {
		a.fail(w, r, err)
		return
	}
	if !a.persist(w, r) {
		return
	}
	a.respondMessage(w, fmt.Sprintf("List %d deleted", id))
}

func (a *API) listTasksOfList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	tasks, err := a.manager.Tasks(id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.respondCount(w, tasks, len(tasks))
}

func (a *API) exportList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	raw := r.URL.Query().Get("format")
	if raw == "" {
		raw = string(formatter.FormatJSON)
	}
	f, err := formatter.ParseFormat(raw)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	list, ok := a.manager.List(id)
	if !ok {
		a.fail(w, r, fmt.Errorf("%w: list %d", shared.ErrNotFound, id))
		return
	}

	data, contentType, err := formatter.Export(list, f)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, formatter.DefaultBase(list), f.Extension()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
