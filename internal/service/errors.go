// Package service implements the application's domain services. This layer
// owns the cross-entity rules: referential integrity between notes and the
// categories/reminders they reference, and the per-entity error conversion
// policy described on each service.
//
// Error handling principles:
//  1. Lookups that are the primary purpose of an operation (GetByID)
//     propagate the store's typed not-found sentinel.
//  2. Lookups that are a precondition inside a composite operation keep the
//     typed sentinel of the aggregate that failed, so callers always learn
//     which reference was broken.
//  3. Where an operation's contract is a boolean outcome (category
//     update/delete, note delete), an internal not-found converts to false
//     instead of an error.
//  4. Unexpected failures are wrapped with fmt.Errorf("%w") and operation
//     context; expected conditions pass through as their sentinels.
package service
