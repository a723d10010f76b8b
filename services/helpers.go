package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blog-platform/slug"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// uniqueSlug derives a slug from source and resolves collisions with a
// numeric suffix (-2, -3, ...). The exists check must ignore the entity
// being updated so an unchanged title keeps its slug.
func uniqueSlug(source string, excludeID uint, exists func(slug string, excludeID uint) (bool, error)) (string, error) {
	base := slug.Make(source)
	if base == "" {
		base = "untitled"
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
