// Package tasks owns the in-memory task store and every rule about it.
//
// # Core Operations
//
// [Manager] is the single authority over lists and tasks:
//
//  1. Lists : [Manager.CreateList], [Manager.RenameList], [Manager.UpdateList], [Manager.DeleteList]
//     - Names are trimmed and must not be empty
//     - Deleting a list deletes every task it owns
//
//  2. Tasks : [Manager.AddTask], [Manager.UpdateTask], [Manager.DeleteTask], [Manager.MoveTask]
//     - Ids come from one store-wide counter and are never reissued
//     - Updates validate every field before touching the task
//     - A move removes the task from its source and appends it to the target under one lock
//
//  3. Persistence : [Manager.Load], [Manager.Save]
//     - The whole store round-trips through a [Store] as one [models.Snapshot]
//     - Counters are part of the snapshot, so ids survive restarts
//
// # Concurrency
//
// A single [sync.RWMutex] guards the store. Mutations and Save take the write lock for their whole duration.
// Reads take the read lock and return deep copies, so callers never share memory with the store.
//
// # Lookups
//
// [Manager.Task] searches one list. [Manager.FindTask] scans every list and is what the HTTP layer uses for
// routes that only carry a task id.
package tasks
