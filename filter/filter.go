// Package filter compiles expr expressions and evaluates them against
// ranking rows, so CLI users can narrow API results with expressions
// like "CharacterLevel >= 250 and contains(WorldName, 'scania')".
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gamescope/nexctl/maplestory"
)

// Filter is a compiled filter expression.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression. Helper functions are available
// alongside the row fields.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // row fields are injected at evaluation time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: "failed to compile expression", Err: err}
	}

	return &Filter{program: program, expression: expression}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one ranking entry.
func (f *Filter) Match(entry maplestory.RankingEntry) (bool, error) {
	env := helperFunctions()
	env["Ranking"] = entry.Ranking
	env["CharacterName"] = entry.CharacterName
	env["WorldName"] = entry.WorldName
	env["ClassName"] = entry.ClassName
	env["SubClassName"] = entry.SubClassName
	env["CharacterLevel"] = entry.CharacterLevel
	env["CharacterExp"] = entry.CharacterExp
	env["CharacterPopularity"] = entry.CharacterPopularity
	env["CharacterGuildName"] = entry.CharacterGuildName

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return a boolean")
	}
	return matched, nil
}

// Apply returns the entries matching the filter.
func (f *Filter) Apply(entries []maplestory.RankingEntry) ([]maplestory.RankingEntry, error) {
	var matched []maplestory.RankingEntry
	for _, entry := range entries {
		ok, err := f.Match(entry)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// helperFunctions defines the static helpers usable in expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
	}
}
