// Package models defines the domain entities of the task list service.
//
// The package contains three groups of types:
//
// 1. Entities owned by the store
//   - [List] : A named container that owns an ordered collection of tasks
//   - [Task] : A unit of work with title, description, status, and priority
//
// 2. Partial updates
//   - [TaskPatch] : Optional task fields, each applied only when set
//   - [ListPatch] : Optional list fields, each applied only when set
//
// 3. Persistence
//   - [Snapshot] : The whole store as one document, including the next-id counters
//
// Entities are plain values. The task manager hands out deep copies (see [List.Clone]),
// so mutating a returned value never changes the store.
package models
