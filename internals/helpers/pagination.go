package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads ?page= and ?per_page= (alias ?limit=) and normalizes.
// defaultPerPage is the fallback; maxPerPage caps it (0 = no cap).
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

// ClampPaging re-derives the offset after the total row count is known, so
// out-of-range page numbers deliver the last page instead of an empty one.
func ClampPaging(p Paging, total int64) Paging {
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if totalPages == 0 {
		totalPages = 1
	}
	if p.Page > totalPages {
		p.Page = totalPages
		p.Offset = (p.Page - 1) * p.PerPage
	}
	return p
}
