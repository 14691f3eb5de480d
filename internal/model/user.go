package model

import "github.com/google/uuid"

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

type User struct {
	ID    uuid.UUID
	Login string
	Plan  Plan
}

// QuotaDecision is the quota service's verdict on one more action of a kind.
// A negative limit means unlimited.
type QuotaDecision struct {
	Allowed bool
	Limit   int
}
