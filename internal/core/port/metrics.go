package port

import "mesa-rewards/internal/core/domain"

// Metrics observes the lifecycle. Implementations must be safe for
// concurrent use.
type Metrics interface {
	SlotTransition(kind domain.RewardKind, from, to domain.SlotState)
	LoadRequested(kind domain.RewardKind)
	DisplayStarted(kind domain.RewardKind)
	DisplayFinished(kind domain.RewardKind)
	RewardResolved(outcome domain.RewardOutcome)
}

// NopMetrics discards all observations.
type NopMetrics struct{}

func (NopMetrics) SlotTransition(domain.RewardKind, domain.SlotState, domain.SlotState) {}
func (NopMetrics) LoadRequested(domain.RewardKind)                                     {}
func (NopMetrics) DisplayStarted(domain.RewardKind)                                    {}
func (NopMetrics) DisplayFinished(domain.RewardKind)                                   {}
func (NopMetrics) RewardResolved(domain.RewardOutcome)                                 {}
