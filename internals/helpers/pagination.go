package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1
)

type PaginationOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = PaginationOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PaginationOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PaginationParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

// ParsePagination default (global)
func ParsePagination(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) PaginationParams {
	return ParsePaginationWith(c, defaultSortBy, defaultSortOrder, DefaultOpts)
}

// ParsePaginationWith preset
func ParsePaginationWith(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt PaginationOptions) PaginationParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := opt.DefaultPerPage
	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("per_page"), c.Query("limit")))
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}
	if per < 1 {
		per = opt.DefaultPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(c.Query("order"), c.Query("sort"))))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return PaginationParams{
		Page:      page,
		PerPage:   per,
		SortBy:    sortBy,
		SortOrder: order,
	}
}

func (p PaginationParams) Limit() int  { return p.PerPage }
func (p PaginationParams) Offset() int { return (p.Page - 1) * p.PerPage }

// OrderClause hanya menerima kolom yang sudah di-whitelist caller.
func (p PaginationParams) OrderClause(allowed map[string]string) string {
	col, ok := allowed[p.SortBy]
	if !ok {
		for _, v := range allowed {
			col = v
			break
		}
	}
	return col + " " + p.SortOrder
}

// BuildMeta untuk response list
func BuildMeta(p PaginationParams, total int64) fiber.Map {
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}

func atoiDefault(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
