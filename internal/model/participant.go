package model

// Identity uniquely identifies a roster entry. There is no surrogate id;
// the (competition, leader, team) triple is the key everywhere, including
// in the attendance sheet.
type Identity struct {
	Competition string
	Leader      string
	Team        string
}

// Matches reports whether all three identity fields are equal.
func (id Identity) Matches(other Identity) bool {
	return id.Competition == other.Competition &&
		id.Leader == other.Leader &&
		id.Team == other.Team
}

// IsComplete reports whether every identity field is non-empty.
func (id Identity) IsComplete() bool {
	return id.Competition != "" && id.Leader != "" && id.Team != ""
}

// Participant is one approved roster entry. The roster is fixed after
// load; only Present is ever mutated.
type Participant struct {
	Identity
	Present bool
}
