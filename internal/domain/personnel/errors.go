package personnel

import "errors"

// Personnel domain errors
var (
	ErrPersonnelNotFound    = errors.New("personnel record not found")
	ErrWorkerCodeExists     = errors.New("worker code already exists")
	ErrDocumentNumberExists = errors.New("document number already registered")
	ErrPersonnelInUse       = errors.New("personnel record has attendance activity and cannot be deleted")
)
