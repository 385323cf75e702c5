package entity

// Role tags which side of the counter an actor is on. Permission checks go
// through the transition table, not string comparisons scattered around.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

// Status is the order lifecycle state. pending is the sole initial state;
// completed, cancelled and rejected are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// statusOrder fixes iteration order so AllowedTargets is deterministic.
var statusOrder = []Status{
	StatusPending, StatusAccepted, StatusPreparing, StatusReady,
	StatusCompleted, StatusCancelled, StatusRejected,
}

// transitions is the single authoritative table of permitted status changes
// and the role allowed to perform each. Everything that validates or renders
// order actions reads this table; there is no second copy anywhere.
var transitions = map[Status]map[Status]Role{
	StatusPending: {
		StatusAccepted:  RoleVendor,
		StatusRejected:  RoleVendor,
		StatusCancelled: RoleCustomer,
	},
	StatusAccepted: {
		StatusPreparing: RoleVendor,
		StatusCancelled: RoleCustomer,
	},
	StatusPreparing: {
		StatusReady:     RoleVendor,
		StatusCancelled: RoleCustomer,
	},
	StatusReady: {
		StatusCompleted: RoleVendor,
	},
}

func (s Status) Valid() bool {
	for _, v := range statusOrder {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRejected
}

// CanTransition reports whether `by` may move an order from `from` to `to`.
func CanTransition(from, to Status, by Role) bool {
	role, ok := transitions[from][to]
	return ok && role == by
}

// AllowedTargets lists the statuses `by` may move an order in `from` to,
// in canonical order.
func AllowedTargets(from Status, by Role) []Status {
	next := transitions[from]
	if len(next) == 0 {
		return nil
	}
	var out []Status
	for _, to := range statusOrder {
		if role, ok := next[to]; ok && role == by {
			out = append(out, to)
		}
	}
	return out
}
