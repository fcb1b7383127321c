package sim

import "fmt"

// Status is the coarse state of a level.
type Status int

const (
	StatusInProgress Status = iota
	StatusLost
	StatusWon
	StatusAdvance
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	case StatusAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating a level's rules. Next is set only for StatusAdvance.
type Outcome struct {
	Status Status
	Next   string
}

// Terminal reports whether the outcome ends the level.
func (o Outcome) Terminal() bool { return o.Status != StatusInProgress }

func (o Outcome) String() string {
	if o.Status == StatusAdvance {
		return fmt.Sprintf("advance(%s)", o.Next)
	}
	return o.Status.String()
}

var inProgress = Outcome{Status: StatusInProgress}

// Standing is what a rule can see of the level at the end of a tick.
type Standing struct {
	Tick            uint64
	PlayerDestroyed bool
	PlayerHealth    int
	Kills           int
	Enemies         int
}

// LevelRule is one end-of-tick predicate. Rules are evaluated in order and the
// first terminal outcome wins.
type LevelRule interface {
	Check(s Standing) Outcome
}

// PlayerDown loses the level once the player craft is destroyed.
type PlayerDown struct{}

// Check implements LevelRule.
func (PlayerDown) Check(s Standing) Outcome {
	if s.PlayerDestroyed {
		return Outcome{Status: StatusLost}
	}
	return inProgress
}

// KillTarget advances to Next once the kill count reaches Threshold.
type KillTarget struct {
	Threshold int
	Next      string
}

// Check implements LevelRule.
func (k KillTarget) Check(s Standing) Outcome {
	if s.Kills >= k.Threshold {
		return Outcome{Status: StatusAdvance, Next: k.Next}
	}
	return inProgress
}

// BossDown wins the game once the boss is destroyed.
type BossDown struct {
	Boss *Entity
}

// Check implements LevelRule.
func (b BossDown) Check(Standing) Outcome {
	if b.Boss.Destroyed() {
		return Outcome{Status: StatusWon}
	}
	return inProgress
}

func evaluate(rules []LevelRule, s Standing) Outcome {
	for _, r := range rules {
		if o := r.Check(s); o.Terminal() {
			return o
		}
	}
	return inProgress
}
