package domain

import "github.com/google/uuid"

// OperatorID identifies the authenticated operator performing API calls.
type OperatorID uuid.UUID
