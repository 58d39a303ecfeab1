// Package template selects the badge background for a role.
//
// A [RuleSet] is an ordered list of (pattern, template) rules with a
// required default. [RuleSet.Select] returns the template of the first rule
// whose pattern matches anywhere in the role text, ignoring case, and the
// default when nothing matches:
//
//	rs, err := template.NewRuleSet([]template.Spec{
//	    {Pattern: "board", Template: "LTA"},
//	    {Pattern: "committee", Template: "Comm"},
//	}, "Plain")
//	rs.Select("Board Member") // "LTA"
//	rs.Select("camper")       // "Plain"
package template

import (
	"fmt"
	"regexp"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
)

// Spec is the configured form of a rule.
type Spec struct {
	Pattern  string
	Template string
}

// Rule is a compiled rule.
type Rule struct {
	Pattern  string
	Template string
	re       *regexp.Regexp
}

// Match reports whether the rule's pattern occurs in role, ignoring case.
func (r Rule) Match(role string) bool {
	return r.re.MatchString(role)
}

// RuleSet is an ordered rule list with a terminal default.
type RuleSet struct {
	rules []Rule
	def   string
}

// NewRuleSet compiles specs in order. Patterns are regular expressions
// matched case-insensitively; an empty pattern is rejected because it would
// shadow every later rule.
func NewRuleSet(specs []Spec, defaultTemplate string) (*RuleSet, error) {
	if err := errors.ValidateTemplateID(defaultTemplate); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "default template")
	}
	rs := &RuleSet{def: defaultTemplate, rules: make([]Rule, 0, len(specs))}
	for i, s := range specs {
		if s.Pattern == "" {
			return nil, errors.New(errors.ErrCodeInvalidRule, "rule %d: empty pattern", i+1)
		}
		if err := errors.ValidateTemplateID(s.Template); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "rule %d", i+1)
		}
		re, err := regexp.Compile("(?i)" + s.Pattern)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "rule %d: pattern %q", i+1, s.Pattern)
		}
		rs.rules = append(rs.rules, Rule{Pattern: s.Pattern, Template: s.Template, re: re})
	}
	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on error.
func MustRuleSet(specs []Spec, defaultTemplate string) *RuleSet {
	rs, err := NewRuleSet(specs, defaultTemplate)
	if err != nil {
		panic(fmt.Sprintf("template: %v", err))
	}
	return rs
}

// Select returns the template for role.
func (rs *RuleSet) Select(role string) string {
	id, _ := rs.Resolve(role)
	return id
}

// Resolve returns the template for role and the 1-based index of the rule
// that matched, or 0 when the default was used.
func (rs *RuleSet) Resolve(role string) (string, int) {
	for i, r := range rs.rules {
		if r.Match(role) {
			return r.Template, i + 1
		}
	}
	return rs.def, 0
}

// Default returns the fallback template.
func (rs *RuleSet) Default() string {
	return rs.def
}

// Rules returns the compiled rules in evaluation order.
func (rs *RuleSet) Rules() []Rule {
	return append([]Rule(nil), rs.rules...)
}

// Templates returns every template the rule set can select, default first,
// without duplicates.
func (rs *RuleSet) Templates() []string {
	seen := map[string]bool{rs.def: true}
	ids := []string{rs.def}
	for _, r := range rs.rules {
		if !seen[r.Template] {
			seen[r.Template] = true
			ids = append(ids, r.Template)
		}
	}
	return ids
}
