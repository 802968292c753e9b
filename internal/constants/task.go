package constants

const (
	StatusOpen = "OPEN"

	PriorityLow = "LOW"

	TypeTask  = "TASK"
	TypeEvent = "EVENT"
)

const (
	MinAssignees = 1
	MaxAssignees = 5
)
