package web

import (
	"fmt"
	"net/http"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
)

type createTaskRequest struct {
	ListID      *int            `json:"list_id"`
	Title       *string         `json:"title"`
	Description string          `json:"description"`
	Status      models.Status   `json:"status"`
	Priority    models.Priority `json:"priority"`
}

type moveTaskRequest struct {
	SourceListID *int `json:"source_list_id"`
	TargetListID *int `json:"target_list_id"`
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks := a.manager.AllTasks()
	a.respondCount(w, tasks, len(tasks))
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decode(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	if req.ListID == nil {
		a.fail(w, r, fmt.Errorf("%w: list_id is required", shared.ErrValidation))
		return
	}
	if req.Title == nil {
		a.fail(w, r, fmt.Errorf("%w: title is required", shared.ErrValidation))
		return
	}

	task, err := a.manager.AddTask(*req.ListID, models.Task{
		Title:       *req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !a.persist(w, r) {
		return
	}
	a.respond(w, http.StatusCreated, task)
}

// lookupTask resolves the {id} path value to a stored task.
func (a *API) lookupTask(r *http.Request) (models.Task, error) {
	id, err := pathID(r)
	if err != nil {
		return models.Task{}, err
	}
	task, ok := a.manager.FindTask(id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: task %d", shared.ErrNotFound, id)
	}
	return task, nil
}

func (a *API) getTask(w http.ResponseWriter, r *http.Request) {
	task, err := a.lookupTask(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.respond(w, http.StatusOK, task)
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request) {
	task, err := a.lookupTask(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	var patch models.TaskPatch
	if err := decode(w, r, &patch); err != nil {
		a.fail(w, r, err)
		return
	}

	updated, err := a.manager.UpdateTask(task.ListID, task.ID, patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !a.persist(w, r) {
		return
	}
	a.respond(w, http.StatusOK, updated)
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request) {
	task, err := a.lookupTask(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	if err := a.manager.DeleteTask(task.ListID, task.ID); err != nil {
		a.fail(w, r, err)
		return
	}
	if !a.persist(w, r) {
		return
	}
	a.respondMessage(w, fmt.Sprintf("Task %d deleted", task.ID))
}

// moveTask moves a task to target_list_id. source_list_id defaults to the task's current list.
func (a *API) moveTask(w http.ResponseWriter, r *http.Request) {
	task, err := a.lookupTask(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	var req moveTaskRequest
	if err := decode(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	if req.TargetListID == nil {
		a.fail(w, r, fmt.Errorf("%w: target_list_id is required", shared.ErrValidation))
		return
	}
	source := task.ListID
	if req.SourceListID != nil {
		source = *req.SourceListID
	}

	moved, err := a.manager.MoveTask(source, task.ID, *req.TargetListID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !a.persist(w, r) {
		return
	}
	a.respond(w, http.StatusOK, moved)
}
