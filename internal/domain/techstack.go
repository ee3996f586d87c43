package domain

// The Administration and Management departments have no development track,
// so their employees carry a "not applicable" tech stack. The two wire
// values (AdminNA, MgmtNA) are one sentinel concept parameterized by
// department.

// SentinelFor returns the N/A tech stack belonging to a department, or ""
// for departments that require a real stack.
func SentinelFor(d Department) TechStack {
	switch d {
	case DepartmentAdministration:
		return TechStackAdminNA
	case DepartmentManagement:
		return TechStackMgmtNA
	}
	return ""
}

// IsSentinel reports whether t is one of the N/A values.
func IsSentinel(t TechStack) bool {
	return t == TechStackAdminNA || t == TechStackMgmtNA
}

// NormalizeTechStack corrects a stale sentinel after a department change.
// Moving between Administration and Management swaps the sentinel; moving to
// Development or Design never auto-populates a stack, the stale value is
// kept for the caller to re-select and reject at validation time.
func NormalizeTechStack(dept Department, stack TechStack) TechStack {
	if !IsSentinel(stack) {
		return stack
	}
	if s := SentinelFor(dept); s != "" {
		return s
	}
	return stack
}

// ValidateTechStack enforces the cross-field constraint at submit time:
// Administration and Management must carry their own sentinel, Development
// and Design must carry a real stack.
func ValidateTechStack(dept Department, stack TechStack) bool {
	if !dept.Valid() || !stack.Valid() {
		return false
	}
	if s := SentinelFor(dept); s != "" {
		return stack == s
	}
	return !IsSentinel(stack)
}
