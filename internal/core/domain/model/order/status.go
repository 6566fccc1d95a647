package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Values are persisted as
// integers and must not be renumbered.
//
//	             accept           review
//	  Pending ───────────> Accepted ───────> Reviewed
//	     │ │                   │
//	     │ │ reject            │ report
//	     │ └──────> Rejected   └───────────> Reported
//	     │
//	     └─ cancel (order is deleted)
type Status int

const (
	Rejected Status = iota
	Pending
	Accepted
	Reviewed
	Reported
)

// Action is a lifecycle operation requested by a customer or a restaurant.
type Action int

const (
	ActionAccept Action = iota + 1
	ActionReject
	ActionCancel
	ActionReview
	ActionReport
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Rejected: "Rejected",
		Pending:  "Pending",
		Accepted: "Accepted",
		Reviewed: "Reviewed",
		Reported: "Reported",
	}
}

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionAccept: "accept",
		ActionReject: "reject",
		ActionCancel: "cancel",
		ActionReview: "review",
		ActionReport: "report",
	}
}

// requiredStatus is the guard of each action.
var requiredStatus = map[Action]Status{
	ActionAccept: Pending,
	ActionReject: Pending,
	ActionCancel: Pending,
	ActionReview: Accepted,
	ActionReport: Accepted,
}

// resultingStatus is absent for cancel, which deletes the order.
var resultingStatus = map[Action]Status{
	ActionAccept: Accepted,
	ActionReject: Rejected,
	ActionReview: Reviewed,
	ActionReport: Reported,
}

var actionRoles = map[Action]Role{
	ActionAccept: RoleRestaurant,
	ActionReject: RoleRestaurant,
	ActionCancel: RoleCustomer,
	ActionReview: RoleCustomer,
	ActionReport: RoleCustomer,
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Reviewed || s == Reported
}

func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Role is the actor role allowed to perform the action.
func (a Action) Role() Role {
	return actionRoles[a]
}

// RequiredStatus is the status an order must be in for the action to apply.
func (a Action) RequiredStatus() (Status, bool) {
	s, ok := requiredStatus[a]
	return s, ok
}

// Guard fails with a Forbidden error unless the action is allowed from s.
func (s Status) Guard(a Action) error {
	from, ok := requiredStatus[a]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}

	if s != from {
		return errs.NewForbiddenError(
			a.String(),
			fmt.Sprintf("order is %s, must be %s", s.String(), from.String()),
		)
	}
	return nil
}

// Apply returns the status reached by performing a from s.
func (s Status) Apply(a Action) (Status, error) {
	if err := s.Guard(a); err != nil {
		return 0, err
	}

	to, ok := resultingStatus[a]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"action",
			fmt.Errorf("%s does not lead to a status", a.String()),
		)
	}
	return to, nil
}

// Scope groups statuses the way order lists are presented to each role.
type Scope string

const (
	ScopeActive   Scope = "active"
	ScopePast     Scope = "past"
	ScopeIncoming Scope = "incoming"
)

// StatusesFor returns the statuses listed under scope for role. Restaurants
// see Pending orders as incoming, never as active.
func StatusesFor(role Role, scope Scope) ([]Status, error) {
	switch {
	case role == RoleCustomer && scope == ScopeActive:
		return []Status{Pending, Accepted}, nil
	case role == RoleCustomer && scope == ScopePast:
		return []Status{Rejected, Reviewed, Reported}, nil
	case role == RoleRestaurant && scope == ScopeIncoming:
		return []Status{Pending}, nil
	case role == RoleRestaurant && scope == ScopeActive:
		return []Status{Accepted}, nil
	case role == RoleRestaurant && scope == ScopePast:
		return []Status{Reviewed, Reported}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"scope",
			fmt.Errorf("%q is not available for %s", scope, role),
		)
	}
}
