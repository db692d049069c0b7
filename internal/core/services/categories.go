package services

import "chanager/internal/core/domain"

// BuildCategoryOptions maps categories to picker options, keeping their order.
func BuildCategoryOptions(categories []domain.Category) []domain.CategoryOption {
	options := make([]domain.CategoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, domain.CategoryOption{
			Label: c.Name,
			Value: c.ID,
		})
	}
	return options
}

func ResolveCategory(categories []domain.Category, id string) (domain.Category, error) {
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Category{}, domain.CategoryNotFoundError{CategoryID: id}
}
