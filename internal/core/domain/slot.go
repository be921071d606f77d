package domain

// SlotState is the lifecycle state of an ad slot.
//
//	empty -> loading -> ready -> showing -> consumed -> empty
//	loading -> error -> empty
//
// error and consumed are pass-through states: a slot never rests in them,
// but observers see the transition.
type SlotState string

const (
	SlotEmpty    SlotState = "empty"
	SlotLoading  SlotState = "loading"
	SlotReady    SlotState = "ready"
	SlotShowing  SlotState = "showing"
	SlotError    SlotState = "error"
	SlotConsumed SlotState = "consumed"
)

// SlotSnapshot is a read-only copy of a slot's state.
type SlotSnapshot struct {
	RewardKind   RewardKind `json:"reward_kind"`
	State        SlotState  `json:"state"`
	LastError    string     `json:"last_error,omitempty"`
	LoadFailures int        `json:"load_failures"`
}
