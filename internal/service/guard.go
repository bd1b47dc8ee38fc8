package service

// Decision is the tagged outcome of an authorization check. Handlers consume
// it uniformly instead of re-implementing inline ownership comparisons.
type Decision int

const (
	// DecisionAllow permits the operation: the session identity owns the
	// target resource.
	DecisionAllow Decision = iota

	// DecisionDeny refuses the operation: the request is anonymous or the
	// session identity does not own the target resource. A deny must never
	// silently no-op; callers map it to the uniform unauthorized response.
	DecisionDeny

	// DecisionNotFound reports that the target resource does not exist.
	// Distinct from DecisionDeny: resolution happens before authorization.
	DecisionNotFound
)

// String returns the decision name for logging.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDeny:
		return "deny"
	case DecisionNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Guard is the single authorization policy point. It is pure and stateless:
// the same inputs always produce the same decision, and no locking is needed
// for concurrent use.
//
// The rule applied to every protected operation: an anonymous request is
// denied; an authenticated request is allowed only when the session identity
// equals the owner of the target resource. For feedback-scoped operations the
// owner is the feedback row's own username field, so ownership cannot be
// spoofed through a mismatched path parameter.
type Guard struct{}

// NewGuard constructs a [Guard].
func NewGuard() Guard {
	return Guard{}
}

// Authorize decides whether the session identity may act on a resource owned
// by owner. An empty sessionUser means the request is anonymous.
func (g Guard) Authorize(sessionUser, owner string) Decision {
	if sessionUser == "" {
		return DecisionDeny
	}

	if sessionUser != owner {
		return DecisionDeny
	}

	return DecisionAllow
}

// AuthorizeResource is Authorize extended with resource resolution: when the
// target does not exist the outcome is DecisionNotFound regardless of who is
// asking, keeping "missing" and "forbidden" distinct.
func (g Guard) AuthorizeResource(sessionUser, owner string, found bool) Decision {
	if !found {
		return DecisionNotFound
	}

	return g.Authorize(sessionUser, owner)
}
