package models

// RbacFunc decides whether the caller may hit the given uri.
type RbacFunc func(userID string, role UserRole, uri string) bool
