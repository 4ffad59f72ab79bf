package model

// Capability is one feature that may be gated behind premium status.
type Capability string

const (
	CapabilityBasicView       Capability = "basicView"
	CapabilityUnlimitedList   Capability = "unlimitedList"
	CapabilityCalendar        Capability = "calendar"
	CapabilityAdvancedSort    Capability = "advancedSort"
	CapabilitySearch          Capability = "search"
	CapabilityDetailedMetrics Capability = "detailedMetrics"
)

// Capabilities lists every known capability in a stable order.
var Capabilities = []Capability{
	CapabilityBasicView,
	CapabilityUnlimitedList,
	CapabilityCalendar,
	CapabilityAdvancedSort,
	CapabilitySearch,
	CapabilityDetailedMetrics,
}

// DefaultFreeLimit is the number of funds shown to a non-premium user.
const DefaultFreeLimit = 3

// CanAccess reports whether a capability is available for the given tier.
// basicView is always available; everything else requires premium.
// Unknown capabilities are denied.
func CanAccess(c Capability, isPremium bool) bool {
	switch c {
	case CapabilityBasicView:
		return true
	case CapabilityUnlimitedList, CapabilityCalendar, CapabilityAdvancedSort,
		CapabilitySearch, CapabilityDetailedMetrics:
		return isPremium
	default:
		return false
	}
}

// CapabilityMap evaluates every capability for the given tier.
func CapabilityMap(isPremium bool) map[Capability]bool {
	m := make(map[Capability]bool, len(Capabilities))
	for _, c := range Capabilities {
		m[c] = CanAccess(c, isPremium)
	}
	return m
}

// FreeFeatures and PremiumFeatures describe the tiers on the paywall.
var (
	FreeFeatures = []string{
		"View up to 3 ETFs",
		"Basic dividend info",
		"Price and yield data",
	}
	PremiumFeatures = []string{
		"Unlimited ETF access",
		"Full dividend calendar",
		"Advanced sorting options",
		"Search functionality",
		"Detailed performance metrics",
		"Export to CSV (coming soon)",
		"Priority updates",
	}
)

// EntitlementState is the published view of the premium flag.
type EntitlementState struct {
	IsPremium bool `json:"isPremium"`
}
