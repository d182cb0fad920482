package utils

import "math"

// PointsPerGoal is the value of a goal in Australian football; a behind is worth one point.
const PointsPerGoal = 6

// MaxCount is the largest goal or behind count a game accepts
const MaxCount = math.MaxInt32

// CalculateScore returns the total points for a team from its goals and behinds.
// Counts up to MaxCount cannot overflow the result.
func CalculateScore(goals, behinds int) int64 {
	return int64(goals)*PointsPerGoal + int64(behinds)
}
