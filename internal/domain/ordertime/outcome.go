package ordertime

import "strconv"

// Code is the non-positive sentinel returned when a request is not actionable.
type Code int

const (
	CodePastTime           Code = -3
	CodePastDateTime       Code = -2
	CodeOutsideRestaurant  Code = -2
	CodeOutsideAcceptHours Code = -1
	CodeOutsideLeadTime    Code = 0
	CodeBeyondHorizon      Code = 0
)

type GateName string

const (
	GatePast            GateName = "past"
	GateHorizon         GateName = "horizon"
	GateRestaurantHours GateName = "restaurant_hours"
	GateAcceptHours     GateName = "accept_hours"
	GateLeadTime        GateName = "lead_time"
)

func (g GateName) String() string { return string(g) }

// Outcome is either a rejection code from one gate or the lead time in minutes.
type Outcome struct {
	accepted    bool
	leadMinutes int
	code        Code
	gate        GateName
}

func Accepted(leadMinutes int) Outcome {
	if leadMinutes < 0 {
		leadMinutes = 0
	}
	return Outcome{accepted: true, leadMinutes: leadMinutes}
}

func Rejected(gate GateName, code Code) Outcome {
	return Outcome{code: code, gate: gate}
}

func (o Outcome) IsAccepted() bool { return o.accepted }
func (o Outcome) LeadMinutes() int { return o.leadMinutes }
func (o Outcome) Code() Code       { return o.code }

// Gate is empty for accepted outcomes.
func (o Outcome) Gate() GateName { return o.gate }

// Result is the single integer put on the wire.
func (o Outcome) Result() int {
	if o.accepted {
		return o.leadMinutes
	}
	return int(o.code)
}

func (o Outcome) String() string {
	if o.accepted {
		return "accepted: " + strconv.Itoa(o.leadMinutes) + " min"
	}
	return "rejected by " + string(o.gate) + ": " + strconv.Itoa(int(o.code))
}
