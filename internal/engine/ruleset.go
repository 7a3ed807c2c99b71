package engine

import (
	"fmt"

	"calcutta-auction/internal/auctionerrors"
	model "calcutta-auction/internal/models"

	"github.com/shopspring/decimal"
)

// Intermission bounds, in seconds.
const (
	minIntermissionSeconds = 3
	maxIntermissionSeconds = 180
)

// ValidateRuleSet checks a rule set once, at event creation. Per-bid code
// trusts the rule set after this.
func ValidateRuleSet(rs model.RuleSet) error {
	if rs.AnteCents < 0 {
		return fmt.Errorf("%w - ante must not be negative", auctionerrors.ErrInvalidRuleSet)
	}
	if rs.MinIncrementCents <= 0 {
		return fmt.Errorf("%w - minimum increment must be positive", auctionerrors.ErrInvalidRuleSet)
	}
	if rs.AuctionTimerSeconds <= 0 {
		return fmt.Errorf("%w - auction timer must be positive", auctionerrors.ErrInvalidRuleSet)
	}
	if rs.AntiSnipeExtensionSeconds < 0 {
		return fmt.Errorf("%w - anti-snipe extension must not be negative", auctionerrors.ErrInvalidRuleSet)
	}
	if rs.IntermissionSeconds < minIntermissionSeconds || rs.IntermissionSeconds > maxIntermissionSeconds {
		return fmt.Errorf("%w - intermission must be between %d and %d seconds",
			auctionerrors.ErrInvalidRuleSet, minIntermissionSeconds, maxIntermissionSeconds)
	}
	if rs.PayoutBasis != model.BasisTeamPrice && rs.PayoutBasis != model.BasisTotalPot {
		return fmt.Errorf("%w - unknown payout basis %q", auctionerrors.ErrInvalidRuleSet, rs.PayoutBasis)
	}
	if len(rs.RoundAllocations) == 0 {
		return fmt.Errorf("%w - at least one round allocation required", auctionerrors.ErrInvalidRuleSet)
	}

	one := decimal.NewFromInt(1)
	seen := make(map[string]struct{}, len(rs.RoundAllocations))
	for _, alloc := range rs.RoundAllocations {
		if alloc.Round == "" {
			return fmt.Errorf("%w - round name must not be empty", auctionerrors.ErrInvalidRuleSet)
		}
		if _, dup := seen[alloc.Round]; dup {
			return fmt.Errorf("%w - duplicate round %q", auctionerrors.ErrInvalidRuleSet, alloc.Round)
		}
		seen[alloc.Round] = struct{}{}
		if alloc.Fraction.IsNegative() || alloc.Fraction.GreaterThan(one) {
			return fmt.Errorf("%w - allocation for round %q must be between 0 and 1",
				auctionerrors.ErrInvalidRuleSet, alloc.Round)
		}
	}
	return nil
}
