// Package errs provides the typed errors shared by every layer of the service.
//
// Each error type has a sentinel (e.g. ErrObjectNotFound) returned from Unwrap,
// so callers classify with errors.Is and inspect details with errors.As:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: bad input
//   - ObjectNotFoundError: a referenced order, agent or assignment is absent
//   - InvalidTransitionError: a state machine edge that is not allowed
//   - ConcurrencyConflictError: a conditional write lost against another writer
//   - StoreUnavailableError: the persistence layer failed
//
// The inbound HTTP adapter maps these to 400, 404, 409 and 500.
package errs
