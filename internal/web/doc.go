// Package web implements the JSON REST API over a [tasks.Manager].
//
// # Routes
//
// Every route is mounted under the configured prefix (default /api/v1):
//
//	GET    /health               → service status, outside the envelope
//	GET    /lists                → every list with a task count, no tasks
//	POST   /lists                → create a list
//	GET    /lists/{id}           → one list with its tasks
//	PUT    /lists/{id}           → partial update of name and description
//	DELETE /lists/{id}           → delete a list and its tasks
//	GET    /lists/{id}/tasks     → tasks of one list
//	GET    /lists/{id}/export    → list rendered by ?format=csv|markdown|text|yaml|json|pdf
//	GET    /tasks                → every task across all lists
//	POST   /tasks                → create a task in list_id
//	GET    /tasks/{id}           → one task
//	PUT    /tasks/{id}           → partial update of title, description, status, priority
//	DELETE /tasks/{id}           → delete a task
//	POST   /tasks/{id}/move      → move a task to target_list_id
//
// # Envelope
//
// Success bodies are {"success": true, "data": ..., "count"?, "message"?}. Failures are
// {"success": false, "error": "..."}.
//
// # Errors
//
// Request bodies are decoded strictly: unknown fields, trailing data and malformed JSON are all 400.
// Errors wrapping [shared.ErrValidation] or [shared.ErrInvalidInput] are 400, [shared.ErrNotFound] is 404, and
// anything else is logged and returned as 500.
//
// # Persistence
//
// Each successful mutation is followed by [tasks.Manager.Save]. Reads never save. A failed save is a 500 even though
// the in-memory change has already been applied.
package web
