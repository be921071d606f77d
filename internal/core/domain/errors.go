package domain

import "errors"

var (
	// ErrConfiguration signals a deployment defect such as a reward kind
	// without a catalog entry. It is never retried.
	ErrConfiguration = errors.New("configuration error")
	// ErrPlatformInit is returned when the ad platform fails to initialise.
	ErrPlatformInit = errors.New("ad platform initialization failed")
	// ErrAdLoad is recorded on a slot whose ad failed to load.
	ErrAdLoad = errors.New("ad load failed")
	// ErrAdNotReady is returned by a show attempt on a slot without a
	// loaded ad.
	ErrAdNotReady = errors.New("ad not ready")
)
