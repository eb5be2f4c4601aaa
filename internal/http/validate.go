package http

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Request limits
const (
	MaxBodySize       = 64 * 1024 // bytes
	MaxIDLength       = 128
	MaxQueryLength    = 1024
	MaxCategoryLength = 64
	MaxParamsDepth    = 4
	MaxDiscoverLimit  = 50
)

var (
	// toolIDPattern matches service.tool identifiers
	toolIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+\.[a-zA-Z0-9._-]+$`)
	categoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// validateToolID checks the "<service>.<tool>" shape and length
func validateToolID(toolID string) error {
	if toolID == "" {
		return fmt.Errorf("tool_id is required")
	}
	if len(toolID) > MaxIDLength {
		return fmt.Errorf("tool_id exceeds maximum length of %d", MaxIDLength)
	}
	if !toolIDPattern.MatchString(toolID) {
		return fmt.Errorf("tool_id must have the form service.tool")
	}
	return nil
}

// validateCategory validates an optional category filter
func validateCategory(category string) error {
	if category == "" {
		return nil
	}
	if len(category) > MaxCategoryLength {
		return fmt.Errorf("category exceeds maximum length of %d", MaxCategoryLength)
	}
	if !categoryPattern.MatchString(category) {
		return fmt.Errorf("category must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// validateQuery validates a discovery query
func validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if !utf8.ValidString(query) {
		return fmt.Errorf("query must be valid UTF-8")
	}
	if len(query) > MaxQueryLength {
		return fmt.Errorf("query exceeds maximum length of %d", MaxQueryLength)
	}
	return nil
}

// validateParamsDepth bounds nesting of decoded tool params
func validateParamsDepth(params map[string]interface{}) error {
	return checkDepth(params, 0, MaxParamsDepth)
}

func checkDepth(data interface{}, depth, maxDepth int) error {
	if depth > maxDepth {
		return fmt.Errorf("params nesting depth exceeds maximum %d", maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}
