// Package catalog maps reward kinds to their ad units and business limits.
// A Catalog is built once at start and is read-only afterwards.
package catalog

import (
	"fmt"

	"mesa-rewards/internal/config/configs"
	"mesa-rewards/internal/core/domain"
)

// Entry is the catalog record of one reward kind.
type Entry struct {
	Unit   domain.AdUnitDescriptor
	Limits domain.RewardLimits
}

// Catalog is an immutable lookup table keyed by reward kind.
type Catalog struct {
	entries map[domain.RewardKind]Entry
}

// New builds a catalog from entries. Entries with an empty ad unit id or a
// duplicated kind are rejected.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[domain.RewardKind]Entry, len(entries))}
	for _, e := range entries {
		kind := e.Unit.RewardKind
		if e.Unit.AdUnitID == "" {
			return nil, fmt.Errorf("%w: no ad unit for %s", domain.ErrConfiguration, kind)
		}
		if _, dup := c.entries[kind]; dup {
			return nil, fmt.Errorf("%w: duplicate catalog entry for %s", domain.ErrConfiguration, kind)
		}
		c.entries[kind] = e
	}
	return c, nil
}

// FromConfig builds the catalog for every known reward kind from the ads
// and rewards configuration sections.
func FromConfig(ads configs.Ads, rewards configs.Rewards) (*Catalog, error) {
	env := domain.Environment(ads.Environment)
	if env != domain.EnvironmentTest && env != domain.EnvironmentProduction {
		return nil, fmt.Errorf("%w: unknown ads environment %q", domain.ErrConfiguration, ads.Environment)
	}

	units := map[domain.RewardKind]string{
		domain.RewardStoryUnlock:     ads.StoryUnlockUnitID,
		domain.RewardTranslation:     ads.TranslationUnitID,
		domain.RewardStreakProtector: ads.StreakProtectorUnitID,
		domain.RewardPremiumTrial:    ads.PremiumTrialUnitID,
	}
	limits := map[domain.RewardKind]configs.RewardLimits{
		domain.RewardStoryUnlock:     rewards.StoryUnlock,
		domain.RewardTranslation:     rewards.Translation,
		domain.RewardStreakProtector: rewards.StreakProtector,
		domain.RewardPremiumTrial:    rewards.PremiumTrial,
	}

	entries := make([]Entry, 0, len(units))
	for _, kind := range domain.AllRewardKinds() {
		unitID := units[kind]
		if env == domain.EnvironmentTest {
			unitID = ads.TestUnitID
		}
		l := limits[kind]
		entries = append(entries, Entry{
			Unit: domain.AdUnitDescriptor{RewardKind: kind, AdUnitID: unitID, Environment: env},
			Limits: domain.RewardLimits{
				DailyFreeAllowance:    l.DailyFreeAllowance,
				PerAdGrantAmount:      l.PerAdGrantAmount,
				UnlockDurationSeconds: l.UnlockDurationSeconds,
				MaxDailyAdsShown:      l.MaxDailyAdsShown,
				CooldownSeconds:       ads.CooldownSeconds,
			},
		})
	}
	return New(entries...)
}

// Lookup returns the ad unit and limits for kind. A miss is a deployment
// defect and yields domain.ErrConfiguration.
func (c *Catalog) Lookup(kind domain.RewardKind) (domain.AdUnitDescriptor, domain.RewardLimits, error) {
	e, ok := c.entries[kind]
	if !ok {
		return domain.AdUnitDescriptor{}, domain.RewardLimits{}, fmt.Errorf("%w: no catalog entry for %q", domain.ErrConfiguration, kind)
	}
	return e.Unit, e.Limits, nil
}

// Kinds returns the catalogued reward kinds in domain.AllRewardKinds order.
func (c *Catalog) Kinds() []domain.RewardKind {
	kinds := make([]domain.RewardKind, 0, len(c.entries))
	for _, k := range domain.AllRewardKinds() {
		if _, ok := c.entries[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
