package domain

// EnforceRequest is the question asked of the access-control layer: may this
// role perform action on resource.
type EnforceRequest struct {
	Role     Role
	Resource string
	Action   string
}
