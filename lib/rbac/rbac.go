package rbac

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"inspection-tools-backend/models"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(roles []models.UserRole, routePattern string, handler models.RbacFunc) error
}

var Instance Provider

func NewHandler() {
	i := &impl{
		rules: map[HTTPMethod]*PathRule{},
	}
	Instance = i
	i.initRules()
}

type impl struct {
	rules map[HTTPMethod]*PathRule
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	normalizedPath := normalizePath(path)
	httpMethod := HTTPMethod(strings.ToUpper(method))

	if pathRule, exists := i.rules[httpMethod]; exists {
		if handler, found := i.findInPathRule(pathRule, normalizedPath); found {
			return handler, true
		}
	}

	return nil, false
}

func (i *impl) RegisterRule(roles []models.UserRole, routePattern string, handler models.RbacFunc) error {
	path, method, err := parseRoutePattern(routePattern)
	if err != nil {
		panic(err.Error())
	}

	if _, exists := i.rules[method]; !exists {
		i.rules[method] = &PathRule{
			Exact:    make(map[string]models.RbacFunc),
			Patterns: []PatternRule{},
		}
	}

	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	pathRule := i.rules[method]
	if isExactPath(path) {
		pathRule.Exact[path] = handler
	} else {
		pattern := pathToRegex(path)
		if pattern == nil {
			pathRule.Exact[path] = handler
		} else {
			pathRule.Patterns = append(pathRule.Patterns, PatternRule{
				Pattern: pattern,
				Handler: handler,
			})
		}
	}

	return nil
}

func isExactPath(path string) bool {
	return !strings.Contains(path, "{")
}

func pathToRegex(path string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(path)

	// restore escaped { and } so path parameters survive quoting
	pattern = strings.ReplaceAll(pattern, "\\{", "{")
	pattern = strings.ReplaceAll(pattern, "\\}", "}")

	pattern = regexp.MustCompile(`\{[^}]+?\}`).ReplaceAllString(pattern, `([^/]+)`)

	pattern = "^" + pattern + "$"

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}

	return regex
}

func (i *impl) findInPathRule(pathRule *PathRule, path string) (models.RbacFunc, bool) {
	if pathRule == nil {
		return nil, false
	}

	if handler, exists := pathRule.Exact[path]; exists {
		return handler, true
	}

	for _, patternRule := range pathRule.Patterns {
		if patternRule.Pattern.MatchString(path) {
			return patternRule.Handler, true
		}
	}

	return nil, false
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(userID string, role models.UserRole, uri string) bool {
		return allowMap[role]
	}
}

// parseRoutePattern parses a swagger-style route string: "/api/v1/cycles [post]"
func parseRoutePattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	parts := strings.Fields(pattern)
	if len(parts) != 2 {
		return "", "", errors.Errorf("invalid route pattern: %s", pattern)
	}
	path = normalizePath(parts[0])
	methodPart := strings.Trim(parts[1], "[]")
	method = HTTPMethod(strings.ToUpper(methodPart))
	switch method {
	case GET, POST, PUT, DELETE, PATCH:
	default:
		return "", "", errors.Errorf("unknown method in route pattern: %s", pattern)
	}
	return path, method, nil
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
