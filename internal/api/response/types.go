package response

import (
	"github.com/procomhq/attendance-portal/internal/model"
)

// Participant represents a roster entry in API responses
type Participant struct {
	Competition string `json:"competition"`
	Team        string `json:"team"`
	Leader      string `json:"leader"`
	Present     bool   `json:"present"`
}

// ParticipantFromModel converts a model.Participant to a response Participant
func ParticipantFromModel(p model.Participant) Participant {
	return Participant{
		Competition: p.Competition,
		Team:        p.Team,
		Leader:      p.Leader,
		Present:     p.Present,
	}
}

// ParticipantsFromModel converts a roster slice, preserving order
func ParticipantsFromModel(participants []model.Participant) []Participant {
	out := make([]Participant, len(participants))
	for i, p := range participants {
		out[i] = ParticipantFromModel(p)
	}
	return out
}

// Ack is the acknowledgement for mutating attendance endpoints
type Ack struct {
	Success bool `json:"success"`
}

// Diagnostics is the response of the sheet connectivity check
type Diagnostics struct {
	Success bool     `json:"success"`
	Headers []string `json:"headers"`
	Auth    string   `json:"auth"`
}
