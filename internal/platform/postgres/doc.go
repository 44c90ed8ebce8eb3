// Package postgres contains the PostgreSQL implementations of the store
// interfaces. All implementations accept a store.DBTX so they work with
// either a plain connection or a transaction, and they map database errors
// to the sentinel errors defined in the store package.
//
// Note references to categories and reminders deliberately carry no foreign
// key constraints in the schema: referential integrity for those edges is a
// service-layer rule, and a deleted reminder must be allowed to leave a
// dangling reference on existing notes.
package postgres
