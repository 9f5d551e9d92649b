// Package storage persists the item collection in a single keyed slot of a
// local durable key-value store.
//
// # Backends
//
// A Backend is the durable store itself. Four implementations exist:
//
//   - FileBackend: one file per key under a data directory, written atomically
//   - SQLiteBackend: a kv table in a SQLite database (modernc.org/sqlite)
//   - BadgerBackend: an embedded Badger LSM database (dgraph-io/badger/v4)
//   - MemoryBackend: an in-process map, used by tests and --ephemeral runs
//
// # Adapter
//
// Adapter reads and writes the collection as a JSON array of item records
// under one key (DefaultKey, "todo-app:v1"). It never fails toward its caller:
//
//   - Load returns an empty collection when the key is missing, the value is
//     not JSON, or the JSON is not an array. Individual records that are null
//     or do not match the item schema are dropped, as are repeated ids.
//   - Save swallows marshal and write errors after logging them. The
//     in-memory collection stays authoritative for the session.
//
// There is no schema versioning beyond the ":v1" suffix of the key and no
// migration logic.
package storage
