package rbac

import (
	"regexp"

	"inspection-tools-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
)

type PathRule struct {
	// checks, fastest first
	Exact    map[string]models.RbacFunc // exact path matches
	Patterns []PatternRule              // regexp rules
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}
