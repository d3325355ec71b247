package ws

// Event is one message pushed to connected browser tabs. The frontend
// reacts to employees.changed by re-fetching the listing; Seq lets a
// client detect missed events after a reconnect.
type Event struct {
	Type string `json:"type"`
	Seq  int64  `json:"seq"`
}

// EventEmployeesChanged signals that the record collection mutated.
const EventEmployeesChanged = "employees.changed"
