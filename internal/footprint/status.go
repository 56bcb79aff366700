package footprint

// Level is a qualitative status band.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelModerate  Level = "moderate"
	LevelHigh      Level = "high"
	LevelVeryHigh  Level = "very-high"
)

type Status struct {
	Level    Level  `json:"level"`
	Label    string `json:"label"`
	Message  string `json:"message"`
	Congrats string `json:"congrats"`
}

type band struct {
	maxNet    float64
	minPoints int // 0 disables the points shortcut
	status    Status
}

var bands = []band{
	{50, 100, Status{
		Level:    LevelExcellent,
		Label:    "Excellent",
		Message:  "You are doing great! Very low emissions.",
		Congrats: "You're at the best level! Keep it up!",
	}},
	{150, 50, Status{
		Level:    LevelGood,
		Label:    "Good",
		Message:  "Great job! Keep up the good work!",
		Congrats: "You're doing well! Keep going!",
	}},
	{300, 0, Status{
		Level:    LevelModerate,
		Label:    "Moderate",
		Message:  "You're doing okay, but there's room for improvement.",
		Congrats: "You can do better! Try planting more trees!",
	}},
	{500, 0, Status{
		Level:    LevelHigh,
		Label:    "High",
		Message:  "Your carbon footprint is high. Consider reducing emissions.",
		Congrats: "Time to take action! Plant trees to offset emissions!",
	}},
}

var veryHigh = Status{
	Level:    LevelVeryHigh,
	Label:    "Very High",
	Message:  "Your carbon footprint is very high. Take action now!",
	Congrats: "Urgent action needed! Start reducing emissions now!",
}

// Classify picks the first band whose net ceiling or points floor matches.
func Classify(s Summary) Status {
	for _, b := range bands {
		if s.NetFootprint <= b.maxNet || (b.minPoints > 0 && s.EcoPoints >= b.minPoints) {
			return b.status
		}
	}
	return veryHigh
}
