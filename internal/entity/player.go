package entity

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
	KindHuman   = "human"
)

// Player describes who occupies a seat in a match.
type Player struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}
