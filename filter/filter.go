// Package filter evaluates expr expressions against fetched games, for
// callers that need finer selection than the remote query language offers.
// It is strictly post-response; nothing here touches the wire query.
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/playdex/igdb"
)

// Filter is a compiled match expression evaluated against one game at a time.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression. Expressions see the game's fields
// (Name, Rating, ReleaseYear, Genres, ...) plus the helper functions below,
// and must evaluate to a boolean.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow game properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{program: program, expression: expression}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// Match evaluates the filter against one game.
func (f *Filter) Match(game igdb.Game) (bool, error) {
	env := buildEnv(game)

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			GameName:   game.Name,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	result, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			GameName:   game.Name,
			Reason:     "expression did not evaluate to a boolean",
		}
	}
	return result, nil
}

// Games returns the games matching the filter, preserving input order.
func Games(games []igdb.Game, f *Filter) ([]igdb.Game, error) {
	var matched []igdb.Game
	for _, game := range games {
		ok, err := f.Match(game)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, game)
		}
	}
	return matched, nil
}

// buildEnv exposes one game's fields to the expression, flattening linked
// entities to name lists.
func buildEnv(game igdb.Game) map[string]interface{} {
	env := helperFunctions()

	env["ID"] = game.ID
	env["Name"] = game.Name
	env["Slug"] = game.Slug
	env["Summary"] = game.Summary
	env["Rating"] = game.Rating
	env["RatingCount"] = game.RatingCount
	env["TotalRating"] = game.TotalRating
	env["TotalRatingCount"] = game.TotalRatingCount
	env["FirstReleaseDate"] = game.FirstReleaseDate
	env["ReleaseYear"] = game.ReleaseYear()
	env["Released"] = game.Released()

	genres := make([]string, 0, len(game.Genres))
	for _, g := range game.Genres {
		genres = append(genres, g.Name)
	}
	env["Genres"] = genres

	platforms := make([]string, 0, len(game.Platforms))
	for _, p := range game.Platforms {
		platforms = append(platforms, p.Name)
	}
	env["Platforms"] = platforms

	return env
}

// helperFunctions returns the static helpers usable in expressions.
func helperFunctions() map[string]interface{} {
	return map[string]interface{}{
		// String helpers
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
		// Collection helpers
		"hasAny": func(values []string, wanted ...string) bool {
			for _, v := range values {
				for _, w := range wanted {
					if strings.EqualFold(v, w) {
						return true
					}
				}
			}
			return false
		},
		// Date helpers
		"currentYear": func() int {
			return time.Now().UTC().Year()
		},
		"yearsAgo": func(years int) int {
			return time.Now().UTC().Year() - years
		},
		"now": time.Now,
	}
}
