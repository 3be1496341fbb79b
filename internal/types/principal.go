package types

// Principal is the authenticated user a request acts for
type Principal struct {
	ID       uint64
	Username string
}
