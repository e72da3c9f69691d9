package content

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Mapping wires a Store to one resource kind: its tables, the translation
// foreign-key column, list ordering, and accessors on the concrete models.
// Column fields left empty disable the matching filter/feature.
type Mapping[E any, T any] struct {
	EntityTable      string
	TranslationTable string
	OwnerColumn      string // FK column on the translation table, e.g. "post_id"
	DefaultOrder     string // e.g. "posts.created_at DESC"

	CounterColumn  string // bumped asynchronously on GetBySlug (views, downloads)
	CategoryColumn string
	TypeColumn     string
	TagsColumn     string

	EntityID func(*E) string
	Slug     func(*E) string
	Language func(*T) string
	SetOwner func(*T, string)

	// ValidateTranslation checks required localized fields. It runs inside the
	// write transaction so one bad row rolls back the whole create/update.
	ValidateTranslation func(*T) error
}

// Store is the Entity+Translation repository shared by blog posts, events and
// resources. One instance per resource kind, pool injected at construction.
type Store[E any, T any] struct {
	db *gorm.DB
	m  Mapping[E, T]
}

func NewStore[E any, T any](db *gorm.DB, m Mapping[E, T]) *Store[E, T] {
	return &Store[E, T]{db: db, m: m}
}

// DB exposes the underlying pool for kind-specific queries.
func (s *Store[E, T]) DB() *gorm.DB {
	return s.db
}

type ListOptions struct {
	Language string
	Status   string // empty = unrestricted
	Category string
	Type     string
	Tag      string
	Page     int
	Limit    int
}

// base builds the language inner join plus equality/tag filters. An entity
// without a translation in the requested language never joins, so it is
// absent from that language's result set.
func (s *Store[E, T]) base(opt ListOptions) *gorm.DB {
	q := s.db.Model(new(E)).
		Select(s.m.EntityTable+".*").
		Joins(fmt.Sprintf(
			"INNER JOIN %s ON %s.%s = %s.id AND %s.language = ?",
			s.m.TranslationTable,
			s.m.TranslationTable, s.m.OwnerColumn,
			s.m.EntityTable,
			s.m.TranslationTable,
		), opt.Language)

	if opt.Status != "" {
		q = q.Where(s.m.EntityTable+".status = ?", opt.Status)
	}
	if opt.Category != "" && s.m.CategoryColumn != "" {
		q = q.Where(s.m.TranslationTable+"."+s.m.CategoryColumn+" = ?", opt.Category)
	}
	if opt.Type != "" && s.m.TypeColumn != "" {
		q = q.Where(s.m.TranslationTable+"."+s.m.TypeColumn+" = ?", opt.Type)
	}
	if opt.Tag != "" && s.m.TagsColumn != "" {
		q = q.Where(s.m.TranslationTable+"."+s.m.TagsColumn+" LIKE ?", TagPattern(opt.Tag))
	}
	return q
}

// List returns one page of entities carrying exactly the requested-language
// translation, plus the pagination block computed from the unpaged count.
func (s *Store[E, T]) List(opt ListOptions) ([]E, Pagination, error) {
	opt.Page, opt.Limit = NormalizePage(opt.Page, opt.Limit)

	var total int64
	// Count with a plain * select: COUNT(table.*) is Postgres-only syntax and
	// the sqlite test driver rejects it; COUNT(*) counts the same joined rows.
	if err := s.base(opt).Select("*").Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("count %s: %w", s.m.EntityTable, err)
	}

	page := NewPagination(opt.Page, opt.Limit, total)

	items := []E{}
	err := s.base(opt).
		Order(s.m.DefaultOrder).
		Limit(opt.Limit).
		Offset(page.Offset()).
		Preload("Translations", "language = ?", opt.Language).
		Find(&items).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list %s: %w", s.m.EntityTable, err)
	}
	return items, page, nil
}

// GetBySlug fetches one entity in one language. When the kind has a read
// counter the bump is fired asynchronously and best-effort: the response may
// not reflect it and its failure never fails the read.
func (s *Store[E, T]) GetBySlug(slug, language string) (*E, error) {
	var e E
	err := s.base(ListOptions{Language: language}).
		Where(s.m.EntityTable+".slug = ?", slug).
		Preload("Translations", "language = ?", language).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by slug: %w", s.m.EntityTable, err)
	}

	if s.m.CounterColumn != "" {
		id := s.m.EntityID(&e)
		go s.bumpCounter(id)
	}
	return &e, nil
}

func (s *Store[E, T]) bumpCounter(id string) {
	col := s.m.CounterColumn
	err := s.db.Model(new(E)).
		Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + 1")).Error
	if err != nil {
		// best-effort: lost increments are accepted
		_ = err
	}
}

// Increment is the dedicated mutation path for counters (likes, downloads).
func (s *Store[E, T]) Increment(slug, column string) error {
	res := s.db.Model(new(E)).
		Where("slug = ?", slug).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("increment %s.%s: %w", s.m.EntityTable, column, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store[E, T]) checkTranslations(translations []T) error {
	if len(translations) == 0 {
		return fmt.Errorf("%w: at least one translation is required", ErrValidation)
	}
	seen := make(map[string]bool, len(translations))
	for i := range translations {
		lang := s.m.Language(&translations[i])
		if !IsSupportedLanguage(lang) {
			return fmt.Errorf("%w: unsupported language %q", ErrValidation, lang)
		}
		if seen[lang] {
			return fmt.Errorf("%w: duplicate translation for language %q", ErrValidation, lang)
		}
		seen[lang] = true
	}
	return nil
}

// Create inserts the entity and its translations atomically. A slug collision
// is a conflict; an invalid translation rolls everything back.
func (s *Store[E, T]) Create(e *E, translations []T) error {
	if err := s.checkTranslations(translations); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(new(E)).Where("slug = ?", s.m.Slug(e)).Count(&count).Error; err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: slug %q already exists", ErrConflict, s.m.Slug(e))
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Translations").Create(e).Error; err != nil {
			return fmt.Errorf("insert %s: %w", s.m.EntityTable, err)
		}
		id := s.m.EntityID(e)
		for i := range translations {
			if err := s.m.ValidateTranslation(&translations[i]); err != nil {
				return err
			}
			s.m.SetOwner(&translations[i], id)
			if err := tx.Create(&translations[i]).Error; err != nil {
				return fmt.Errorf("insert %s: %w", s.m.TranslationTable, err)
			}
		}
		return nil
	})
}

// Update mutates entity fields by slug and replaces the whole translation set.
// Old translations are deleted and the input set inserted in one transaction,
// so translations are never observably deleted without being replaced.
func (s *Store[E, T]) Update(slug string, fields map[string]interface{}, translations []T) error {
	if err := s.checkTranslations(translations); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var e E
		err := tx.Where("slug = ?", slug).First(&e).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", s.m.EntityTable, err)
		}
		id := s.m.EntityID(&e)

		if fields == nil {
			fields = map[string]interface{}{}
		}
		fields["updated_at"] = time.Now()
		if err := tx.Model(new(E)).Where("id = ?", id).Updates(fields).Error; err != nil {
			return fmt.Errorf("update %s: %w", s.m.EntityTable, err)
		}

		if err := tx.Where(s.m.OwnerColumn+" = ?", id).Delete(new(T)).Error; err != nil {
			return fmt.Errorf("clear %s: %w", s.m.TranslationTable, err)
		}
		for i := range translations {
			if err := s.m.ValidateTranslation(&translations[i]); err != nil {
				return err
			}
			s.m.SetOwner(&translations[i], id)
			if err := tx.Create(&translations[i]).Error; err != nil {
				return fmt.Errorf("insert %s: %w", s.m.TranslationTable, err)
			}
		}
		return nil
	})
}

// Delete removes the entity and, in the same transaction, all its
// translations.
func (s *Store[E, T]) Delete(slug string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var e E
		err := tx.Where("slug = ?", slug).First(&e).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", s.m.EntityTable, err)
		}
		id := s.m.EntityID(&e)

		if err := tx.Where(s.m.OwnerColumn+" = ?", id).Delete(new(T)).Error; err != nil {
			return fmt.Errorf("delete %s: %w", s.m.TranslationTable, err)
		}
		if err := tx.Where("id = ?", id).Delete(new(E)).Error; err != nil {
			return fmt.Errorf("delete %s: %w", s.m.EntityTable, err)
		}
		return nil
	})
}

// DistinctCategories returns the sorted set of non-empty category values in
// one language. Feeds the public filter dropdowns.
func (s *Store[E, T]) DistinctCategories(language string) ([]string, error) {
	if s.m.CategoryColumn == "" {
		return []string{}, nil
	}
	out := []string{}
	err := s.db.Table(s.m.TranslationTable).
		Distinct(s.m.CategoryColumn).
		Where("language = ? AND "+s.m.CategoryColumn+" <> ''", language).
		Order(s.m.CategoryColumn + " ASC").
		Pluck(s.m.CategoryColumn, &out).Error
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return out, nil
}

// DistinctTags returns the sorted union of all tag lists in one language.
func (s *Store[E, T]) DistinctTags(language string) ([]string, error) {
	if s.m.TagsColumn == "" {
		return []string{}, nil
	}
	var rows []StringList
	err := s.db.Table(s.m.TranslationTable).
		Where("language = ?", language).
		Pluck(s.m.TagsColumn, &rows).Error
	if err != nil {
		return nil, fmt.Errorf("distinct tags: %w", err)
	}

	set := map[string]bool{}
	for _, tags := range rows {
		for _, t := range tags {
			set[t] = true
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}
