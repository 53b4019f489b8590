package domain

// SystemTaskID marks log entries that describe category-level or other
// board-wide events rather than a single task.
const SystemTaskID = "system"

// MaxLogEntries caps the activity log; the oldest entries beyond it are
// dropped on every append.
const MaxLogEntries = 50

// ActivityLogEntry is one line of the newest-first audit trail. TaskTitle is
// denormalized at logging time and does not follow later renames.
type ActivityLogEntry struct {
	ID        string `json:"id"`
	TaskID    string `json:"taskId"`
	TaskTitle string `json:"taskTitle"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}
