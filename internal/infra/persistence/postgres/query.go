package postgres

import (
	"context"
	"strings"

	"syncfloww/internal/domain/entity"

	"gorm.io/gorm"
)

// orderBy maps a client ordering ("title", "-created_at") onto a whitelisted column.
// Unknown fields fall back to fallback.
func orderBy(ordering string, allowed map[string]string, fallback string) string {
	field := strings.TrimSpace(ordering)
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")

	column, ok := allowed[field]
	if !ok {
		return fallback
	}
	if desc {
		return column + " DESC"
	}

	return column + " ASC"
}

// likePattern escapes LIKE wildcards in a user search term.
func likePattern(search string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(strings.TrimSpace(search)) + "%"
}

// paginate counts the filtered rows, then loads one ordered window.
// query must already carry its Model and Where clauses.
func paginate[M any](ctx context.Context, query *gorm.DB, page entity.PageRequest, order string, preloads ...string) ([]M, int64, error) {
	base := query.WithContext(ctx).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []M
	if total == 0 {
		return rows, 0, nil
	}

	find := base.Order(order).Offset(page.Offset()).Limit(page.Limit())
	for _, preload := range preloads {
		find = find.Preload(preload)
	}
	if err := find.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// mapPage converts a model window into a domain page.
func mapPage[M any, E any](rows []M, total int64, page entity.PageRequest, convert func(*M) E) *entity.Page[E] {
	items := make([]E, 0, len(rows))
	for i := range rows {
		items = append(items, convert(&rows[i]))
	}

	return entity.NewPage(items, total, page)
}
