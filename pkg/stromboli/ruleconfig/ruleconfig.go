// Package ruleconfig loads transition rule tables from TOML, so applications
// can declare shared-element transitions without writing style functions.
//
// Example rule file:
//
//	[[rules]]
//	from = "List"
//	to = "Detail"
//	ids = ["avatar"]
//	clone = "all"
//	style = "cross-fade"
//	clone_style = "fly-over"
//
//	[[rules]]
//	from = "*"
//	to = "Settings"
//	style = "slide"
//	width = 1024
//
// Preset names bind to the style functions in the transition package.
package ruleconfig

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

// File is the top-level TOML document.
type File struct {
	Rules []RuleConfig `toml:"rules"`
}

// RuleConfig is one declarative rule table entry.
type RuleConfig struct {
	From       string   `toml:"from"`        // route name or "*"
	To         string   `toml:"to"`          // route name or "*"
	IDs        []string `toml:"ids"`         // item ids that participate; empty admits all
	Clone      string   `toml:"clone"`       // "none" (default), "all", or "from-route"
	Style      string   `toml:"style"`       // "", "cross-fade", or "slide"
	CloneStyle string   `toml:"clone_style"` // "" or "fly-over"
	Width      float64  `toml:"width"`       // window width, required by the slide preset
}

// Load reads a rule file and builds the rule set.
func Load(path string) (transition.RuleSet, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return transition.RuleSet{}, stromboli.NewConfigError("load_rules", err)
	}
	return build(f)
}

// Parse builds a rule set from TOML source.
func Parse(data string) (transition.RuleSet, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return transition.RuleSet{}, stromboli.NewConfigError("parse_rules", err)
	}
	return build(f)
}

func build(f File) (transition.RuleSet, error) {
	rules := make([]transition.Rule, 0, len(f.Rules))
	for i, rc := range f.Rules {
		rule, err := rc.toRule()
		if err != nil {
			return transition.RuleSet{}, stromboli.NewConfigError(
				fmt.Sprintf("build_rule[%d]", i), err)
		}
		rules = append(rules, rule)
	}
	return transition.NewRuleSet(rules...), nil
}

func (rc RuleConfig) toRule() (transition.Rule, error) {
	if rc.From == "" || rc.To == "" {
		return transition.Rule{}, fmt.Errorf("rule %q -> %q: from and to are required", rc.From, rc.To)
	}

	rule := transition.Rule{From: rc.From, To: rc.To}

	if len(rc.IDs) > 0 {
		ids := slices.Clone(rc.IDs)
		rule.Filter = func(id string) bool {
			return slices.Contains(ids, id)
		}
	}

	switch rc.Clone {
	case "", "none":
	case "all":
		rule.ShouldClone = func(transition.Item, string, string) bool { return true }
	case "from-route":
		rule.ShouldClone = func(item transition.Item, fromRoute, _ string) bool {
			return item.RouteName == fromRoute
		}
	default:
		return transition.Rule{}, fmt.Errorf("unknown clone mode %q", rc.Clone)
	}

	switch rc.Style {
	case "":
	case "cross-fade":
		rule.Styles = transition.CrossFadeStyles
	case "slide":
		if rc.Width <= 0 {
			return transition.Rule{}, fmt.Errorf("slide style requires a positive width, got %v", rc.Width)
		}
		rule.Styles = transition.SlideStyles(rc.Width)
	default:
		return transition.Rule{}, fmt.Errorf("unknown style preset %q", rc.Style)
	}

	switch rc.CloneStyle {
	case "":
	case "fly-over":
		rule.CloneStyles = transition.FlyOverCloneStyles
	default:
		return transition.Rule{}, fmt.Errorf("unknown clone style preset %q", rc.CloneStyle)
	}

	return rule, nil
}
