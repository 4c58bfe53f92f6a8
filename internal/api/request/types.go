package request

// IdentityRequest is the body of every mutating attendance endpoint. All
// three fields are required; nothing else is validated.
type IdentityRequest struct {
	Competition string `json:"competition"`
	Leader      string `json:"leader"`
	Team        string `json:"team"`
}
