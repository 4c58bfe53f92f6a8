package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []Participant:
		o.printParticipants(v)
	case Ack:
		o.printAck(v)
	case Diagnostics:
		o.printDiagnostics(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Participant response type (matches API)
type Participant struct {
	Competition string `json:"competition"`
	Team        string `json:"team"`
	Leader      string `json:"leader"`
	Present     bool   `json:"present"`
}

// Ack response type
type Ack struct {
	Success bool `json:"success"`
}

// Diagnostics response type
type Diagnostics struct {
	Success bool     `json:"success"`
	Headers []string `json:"headers"`
	Auth    string   `json:"auth"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printParticipants(participants []Participant) {
	if len(participants) == 0 {
		fmt.Println("No participants found")
		return
	}

	fmt.Printf("Participants (%d):\n", len(participants))
	for _, p := range participants {
		mark := " "
		if p.Present {
			mark = "x"
		}
		fmt.Printf("  [%s] %s - %s (%s)\n", mark, p.Competition, p.Team, p.Leader)
	}
}

func (o *Output) printAck(a Ack) {
	if a.Success {
		fmt.Println("OK")
	} else {
		fmt.Println("Failed")
	}
}

func (o *Output) printDiagnostics(d Diagnostics) {
	fmt.Printf("Success: %t\n", d.Success)
	fmt.Printf("Auth: %s\n", d.Auth)
	fmt.Printf("Headers (%d):\n", len(d.Headers))
	for _, h := range d.Headers {
		fmt.Printf("  - %s\n", h)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
