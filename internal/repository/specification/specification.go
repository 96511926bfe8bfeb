package specification

import "gorm.io/gorm"

// Specification composes query predicates onto a gorm handle. Repositories
// apply them in order before executing.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
