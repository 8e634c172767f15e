package form

import (
	"fmt"
	"place-distance-service/internal/client"
	"place-distance-service/internal/domain"
	"strings"
)

// Role is one of the two place slots tracked by the form.
type Role int

const (
	Start Role = iota
	End
)

func (r Role) String() string {
	switch r {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

func (r Role) valid() bool { return r == Start || r == End }

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "from":
		return Start, nil
	case "end", "to":
		return End, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSearching
	StatusFound
	// Empty query, rejected locally.
	StatusInvalid
	// The backend answered found=false.
	StatusNotFound
	// Transport, status or decode failure.
	StatusFailed
)

func (k StatusKind) String() string {
	switch k {
	case StatusIdle:
		return "idle"
	case StatusSearching:
		return "searching"
	case StatusFound:
		return "found"
	case StatusInvalid:
		return "invalid"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(k))
	}
}

// IsError reports whether the status is one of the error states.
func (k StatusKind) IsError() bool {
	return k == StatusInvalid || k == StatusNotFound || k == StatusFailed
}

// Status is the per-role status line. Address is set only for StatusFound.
type Status struct {
	Kind    StatusKind
	Message string
	Address string
}

const (
	MsgIdle            = "Not selected."
	MsgEnterPlace      = "Please enter a place name."
	MsgSearching       = "Searching..."
	MsgFoundPrefix     = "Found: "
	MsgNotFound        = "Location not found."
	MsgSearchFailed    = "An error occurred."
	MsgCalculateFailed = "An error occurred while calculating the distance."

	LabelCalculate   = "Calculate distance"
	LabelCalculating = "Calculating..."
)

// Result is a rendered distance and the deep link for the same two points.
type Result struct {
	DistanceKm client.Distance
	MapURL     string
	Start      domain.Coordinates
	End        domain.Coordinates
}

// RoleState is a copy of one role's slot.
type RoleState struct {
	Coordinates *domain.Coordinates
	Status      Status
}

// State is a point-in-time copy of the whole form.
type State struct {
	Start         RoleState
	End           RoleState
	Ready         bool
	Calculating   bool
	ResultVisible bool
	Result        *Result
}
