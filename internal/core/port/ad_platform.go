package port

import (
	"context"

	"mesa-rewards/internal/core/domain"
)

// AdPlatform is the outbound port to the ad-serving SDK. The core depends
// only on this contract, never on a concrete platform.
type AdPlatform interface {
	// Initialize prepares the platform. It is called once by the
	// orchestrator; a failure is surfaced to the caller and not retried.
	Initialize(ctx context.Context) error
	// CreateAdRequest creates a handle for a rewarded ad on adUnitID. The
	// handle does nothing until Load is called.
	CreateAdRequest(adUnitID string, opts RequestOptions) (AdHandle, error)
}

// RequestOptions are passed through to the platform with every ad request.
type RequestOptions struct {
	NonPersonalizedOnly bool
	Keywords            []string
}

// AdHandle is a single rewarded ad as exposed by the platform. Events may
// be delivered on any goroutine, including synchronously from Load or Show.
type AdHandle interface {
	// Subscribe registers listener for every event of the handle. The
	// returned function removes it and is safe to call more than once.
	Subscribe(listener func(AdEvent)) (unsubscribe func())
	// Load starts loading the ad. Completion is reported through a
	// loaded or error event.
	Load()
	// Show presents a loaded ad. Reward and close are reported through
	// events.
	Show() error
	// Loaded reports whether the ad is loaded and can be shown.
	Loaded() bool
}

// AdEventType enumerates the events an AdHandle emits.
type AdEventType string

const (
	AdEventLoaded       AdEventType = "loaded"
	AdEventError        AdEventType = "error"
	AdEventEarnedReward AdEventType = "earned_reward"
	AdEventClosed       AdEventType = "closed"
)

// AdEvent is a single event from an AdHandle. Reward is set for
// AdEventEarnedReward and Err for AdEventError.
type AdEvent struct {
	Type   AdEventType
	Reward domain.PlatformReward
	Err    error
}
