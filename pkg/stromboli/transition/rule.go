package transition

import "fmt"

// Wildcard matches any route name in a rule's From or To field.
const Wildcard = "*"

// Marker keys rule style functions use for the two sides of a transition.
// The compiler rewrites them to the resolved route names.
const (
	KeyFrom = "from"
	KeyTo   = "to"
)

// FromPlaceholder keys the from side of a style map when the transition has
// no previous route (initial mount).
const FromPlaceholder = "$from"

// FilterFunc restricts which registered items participate in a rule.
type FilterFunc func(id string) bool

// ShouldCloneFunc decides whether a participant is rendered as a floating
// overlay clone (true) or animated in place (false).
type ShouldCloneFunc func(item Item, fromRoute, toRoute string) bool

// StyleMapFunc produces animated styles for the partitioned from/to item
// sets. The returned map is keyed by the KeyFrom/KeyTo markers, then by
// item id.
type StyleMapFunc func(fromItems, toItems []Item, ctx Context) map[string]map[string]Style

// Rule is one entry of the transition configuration table. From and To are
// route names or Wildcard. All function fields are optional: a nil Filter
// admits every item, a nil ShouldClone animates everything in place, a nil
// Styles or CloneStyles contributes no entries of its kind.
type Rule struct {
	From        string
	To          string
	Filter      FilterFunc
	ShouldClone ShouldCloneFunc
	Styles      StyleMapFunc
	CloneStyles StyleMapFunc
}

func (r Rule) matches(fromRoute, toRoute string) bool {
	// An empty From or To is not a route name and never matches; only
	// Wildcard covers the absent from-route of an initial mount.
	fromOK := r.From == Wildcard || (r.From != "" && r.From == fromRoute)
	toOK := r.To == Wildcard || (r.To != "" && r.To == toRoute)
	return fromOK && toOK
}

// AmbiguousRuleError reports a rule table where more than one rule covers
// the same (from, to) pair. This is a programming mistake in the
// configuration, not a runtime condition.
type AmbiguousRuleError struct {
	FromRoute string
	ToRoute   string
	Count     int
}

func (e *AmbiguousRuleError) Error() string {
	return fmt.Sprintf("transition: %d rules match %s -> %s, want at most one",
		e.Count, e.FromRoute, e.ToRoute)
}

// RuleSet is a static, ordered transition rule table, supplied once at stack
// construction and never mutated at runtime.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds a rule set from the given rules.
func NewRuleSet(rules ...Rule) RuleSet {
	return RuleSet{rules: rules}
}

// Rules returns the rule table in declaration order.
func (rs RuleSet) Rules() []Rule {
	return rs.rules
}

// Match selects the single rule applicable to (fromRoute, toRoute).
// fromRoute may be empty on initial mount; it then behaves as a route name
// that only wildcard From fields cover. No matching rule returns (nil, nil):
// the pair simply has no shared-element animation. More than one match
// returns an AmbiguousRuleError.
func (rs RuleSet) Match(fromRoute, toRoute string) (*Rule, error) {
	var found *Rule
	count := 0
	for i := range rs.rules {
		if rs.rules[i].matches(fromRoute, toRoute) {
			found = &rs.rules[i]
			count++
		}
	}
	if count > 1 {
		return nil, &AmbiguousRuleError{FromRoute: fromRoute, ToRoute: toRoute, Count: count}
	}
	return found, nil
}
