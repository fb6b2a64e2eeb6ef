package entities

// PolicyMode distinguishes ordered forward flows from free-form flows.

type PolicyMode string

const (
	PolicyOrdered PolicyMode = "ordered"
	PolicyFree    PolicyMode = "free"
)

// StatusPolicy is the per-kind transition rule.
//
//   - Ordered: Flow is a fixed forward sequence. Transitions may jump ahead
//     (skipping intermediate statuses) but never regress. StatusRejected is
//     always reachable as the single allowed deviation and is absorbing: it is
//     not a member of Flow, so once an entity is rejected no further transition
//     is legal.
//   - Free: any status in Statuses is reachable from any other.
//
// Terminal lists the statuses that stop the overdue clock for the kind.
type StatusPolicy struct {
	Mode     PolicyMode
	Flow     []Status
	Statuses []Status
	Initial  Status
	Terminal []Status
}

var policies = map[EntityKind]StatusPolicy{
	KindContract: {
		Mode:     PolicyOrdered,
		Flow:     []Status{StatusNew, StatusApproved, StatusContracted, StatusDelivered},
		Initial:  StatusNew,
		Terminal: []Status{StatusDelivered, StatusRejected},
	},
	KindPurchaseOrder: {
		Mode:     PolicyOrdered,
		Flow:     []Status{StatusNew, StatusApproved, StatusContracted, StatusDelivered},
		Initial:  StatusNew,
		Terminal: []Status{StatusDelivered, StatusRejected},
	},
	KindTransaction: {
		Mode:     PolicyOrdered,
		Flow:     []Status{StatusNew, StatusUnderReview, StatusCompleted},
		Initial:  StatusNew,
		Terminal: []Status{StatusCompleted, StatusRejected},
	},
	KindReport: {
		Mode:     PolicyFree,
		Statuses: []Status{StatusOpen, StatusClosed, StatusPaused},
		Initial:  StatusOpen,
		Terminal: []Status{StatusClosed},
	},
}

// PolicyFor returns the transition policy of a kind.
func PolicyFor(kind EntityKind) (StatusPolicy, bool) {
	p, ok := policies[kind]
	return p, ok
}

// AllowedNext returns the statuses legal from current, order preserved,
// deduplicated.
//
// Ordered mode: the suffix of Flow starting at current (inclusive) plus
// StatusRejected. A current status outside Flow (rejected included) yields an
// empty set.
func (p StatusPolicy) AllowedNext(current Status) []Status {
	if p.Mode == PolicyFree {
		out := make([]Status, len(p.Statuses))
		copy(out, p.Statuses)
		return out
	}

	idx := -1
	for i, s := range p.Flow {
		if s == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	out := make([]Status, 0, len(p.Flow)-idx+1)
	out = append(out, p.Flow[idx:]...)
	out = append(out, StatusRejected)
	return out
}

// CanTransition reports whether target is legal from current under the policy.
func (p StatusPolicy) CanTransition(current, target Status) bool {
	for _, s := range p.AllowedNext(current) {
		if s == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status stops the overdue clock for this kind.
func (p StatusPolicy) IsTerminal(status Status) bool {
	for _, s := range p.Terminal {
		if s == status {
			return true
		}
	}
	return false
}

// IsKnown reports whether the status participates in the policy at all.
func (p StatusPolicy) IsKnown(status Status) bool {
	if status == StatusRejected && p.Mode == PolicyOrdered {
		return true
	}
	set := p.Flow
	if p.Mode == PolicyFree {
		set = p.Statuses
	}
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
