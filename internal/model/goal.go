package model

import "fmt"

// Goal selects which subset of detection rules is active for a run.
type Goal string

// Available Goal values.
const (
	GoalSpeed  Goal = "speed"
	GoalCost   Goal = "cost"
	GoalMemory Goal = "memory"
)

// DefaultGoal is used when the caller does not select a goal.
const DefaultGoal = GoalSpeed

// ParseGoal validates a goal selector. Unknown values are a configuration
// error; nothing is silently substituted.
func ParseGoal(s string) (Goal, error) {
	switch Goal(s) {
	case GoalSpeed, GoalCost, GoalMemory:
		return Goal(s), nil
	default:
		return "", fmt.Errorf("unknown goal %q (valid goals: %s, %s, %s)", s, GoalSpeed, GoalCost, GoalMemory)
	}
}

func (g Goal) String() string {
	return string(g)
}
