package model

// Flag marks a detected information gap or risk on a line item.
type Flag string

const (
	// FlagMissingBrandMaterial marks a supply line with no brand or model.
	FlagMissingBrandMaterial Flag = "missing_brand_material"
	// FlagDisposalNotMentioned marks demolition work with no disposal mention.
	FlagDisposalNotMentioned Flag = "disposal_not_mentioned"
	// FlagQuantityUnclear marks a quantity-sensitive line with no measurable quantity.
	FlagQuantityUnclear Flag = "quantity_unclear"
	// FlagExclusionsPresent marks a line containing exclusion phrases.
	FlagExclusionsPresent Flag = "exclusions_present"
	// FlagAuthorizationNotMentioned marks an authorization-sensitive line
	// with no mention of the required filing procedures.
	FlagAuthorizationNotMentioned Flag = "authorization_procedures_not_mentioned"
	// FlagTimelineNotMentioned marks a delivery promise with no dates.
	FlagTimelineNotMentioned Flag = "timeline_not_mentioned"
	// FlagWarrantyNotMentioned marks a warranty mention with no duration.
	FlagWarrantyNotMentioned Flag = "warranty_not_mentioned"
)

// allFlags is the fixed set of known flags.
var allFlags = map[Flag]struct{}{
	FlagMissingBrandMaterial:      {},
	FlagDisposalNotMentioned:      {},
	FlagQuantityUnclear:           {},
	FlagExclusionsPresent:         {},
	FlagAuthorizationNotMentioned: {},
	FlagTimelineNotMentioned:      {},
	FlagWarrantyNotMentioned:      {},
}

// IsValid reports whether f is a member of the fixed flag set.
func (f Flag) IsValid() bool {
	_, ok := allFlags[f]
	return ok
}
