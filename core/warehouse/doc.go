// Package warehouse holds the warehouse-listing domain: the record type and
// its validation rules, the Service implementing list/get/create/update/
// delete, the PostgreSQL store, and a best-effort Redis listing cache.
//
// Errors follow the sentinel pattern: ErrNotFound for missing records and
// ValidationError (unwrapping to ErrInvalidInput) for rejected payloads, so
// transport layers can map them to status codes with errors.Is.
package warehouse
