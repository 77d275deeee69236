package session

import (
	"fmt"
	"time"
)

// BreakSession is one completed timed break. Employee and team fields
// are snapshots taken at creation time so registry edits never corrupt
// history. JSON tags follow the persisted per-day list layout.
type BreakSession struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	TeamID       string     `json:"teamId"`
	TeamName     string     `json:"teamName"`
	Type         string     `json:"type"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Duration     int        `json:"duration"` // whole seconds, final once EndTime is set
}

// DayKey derives the stable per-day storage key segment for a date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StorageKey builds the logical key for one employee's sessions on one day.
func StorageKey(employeeID, dayKey string) string {
	return fmt.Sprintf("breakSessions_%s_%s", employeeID, dayKey)
}
