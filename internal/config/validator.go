package config

import (
	"fmt"
	"slices"
	"strings"

	"coup/internal/domain"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// ValidBotLevels returns the list of valid bot strategies
func ValidBotLevels() []string {
	return []string{"random", "honest", "skeptic"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateMatch()...)
	errs = append(errs, c.validateLogging()...)
	errs = append(errs, c.validateSimulate()...)
	return errs
}

func (c *Config) validateMatch() []ValidationError {
	var errs []ValidationError

	if n := len(c.Match.Players); n < domain.MinPlayers || n > domain.MaxPlayers {
		errs = append(errs, ValidationError{
			Field:   "match.players",
			Value:   n,
			Message: fmt.Sprintf("must list between %d and %d players", domain.MinPlayers, domain.MaxPlayers),
		})
	}

	seen := make(map[string]bool, len(c.Match.Players))
	humans := 0
	for i, p := range c.Match.Players {
		field := fmt.Sprintf("match.players[%d]", i)
		name := strings.TrimSpace(p.Name)
		switch {
		case name == "":
			errs = append(errs, ValidationError{Field: field + ".name", Value: p.Name, Message: "must not be empty"})
		case seen[strings.ToLower(name)]:
			errs = append(errs, ValidationError{Field: field + ".name", Value: p.Name, Message: "must be unique"})
		}
		seen[strings.ToLower(name)] = true

		switch strings.ToLower(p.Kind) {
		case KindHuman:
			humans++
		case KindBot:
			if !slices.Contains(ValidBotLevels(), strings.ToLower(p.Level)) {
				errs = append(errs, ValidationError{
					Field:   field + ".level",
					Value:   p.Level,
					Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidBotLevels(), ", ")),
				})
			}
		default:
			errs = append(errs, ValidationError{Field: field + ".kind", Value: p.Kind, Message: "must be human or bot"})
		}
	}
	if humans > 1 {
		errs = append(errs, ValidationError{Field: "match.players", Value: humans, Message: "at most one human player can share the console"})
	}

	if c.Match.MaxTurns < 0 {
		errs = append(errs, ValidationError{Field: "match.max_turns", Value: c.Match.MaxTurns, Message: "must be non-negative"})
	}
	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}
	return errs
}

func (c *Config) validateSimulate() []ValidationError {
	var errs []ValidationError
	if c.Simulate.Matches < 1 {
		errs = append(errs, ValidationError{Field: "simulate.matches", Value: c.Simulate.Matches, Message: "must be at least 1"})
	}
	if p := c.Simulate.Players; p < domain.MinPlayers || p > domain.MaxPlayers {
		errs = append(errs, ValidationError{
			Field:   "simulate.players",
			Value:   p,
			Message: fmt.Sprintf("must be between %d and %d", domain.MinPlayers, domain.MaxPlayers),
		})
	}
	if len(c.Simulate.Levels) == 0 {
		errs = append(errs, ValidationError{Field: "simulate.levels", Value: c.Simulate.Levels, Message: "must not be empty"})
	}
	for i, l := range c.Simulate.Levels {
		if !slices.Contains(ValidBotLevels(), strings.ToLower(l)) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("simulate.levels[%d]", i),
				Value:   l,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidBotLevels(), ", ")),
			})
		}
	}
	return errs
}
