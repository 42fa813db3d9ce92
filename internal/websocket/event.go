package websocket

// Domain events emitted by the core. An external notification dispatcher
// subscribes to the feed and decides how (and whether) to deliver each one;
// the core itself never sends notifications.
type EventType string

const (
	EventReportCreated       EventType = "report.created"
	EventStatusChanged       EventType = "report.status_changed"
	EventVoteCast            EventType = "report.vote_cast"
	EventEscalationTriggered EventType = "report.escalation_triggered"
)

type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
	Meta    *EventMeta  `json:"meta,omitempty"`
}

type EventMeta struct {
	Timestamp int64  `json:"timestamp"`
	ReportID  string `json:"report_id,omitempty"`
}
