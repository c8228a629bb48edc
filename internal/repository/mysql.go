package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/omayconaguiar/url-shortner/internal/config"
	"github.com/omayconaguiar/url-shortner/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables; the unique index on slug and the cascade FK
	// from visits to short_links are created here.
	if err := db.AutoMigrate(&model.ShortLink{}, &model.Visit{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateLink inserts a new short link. A slug collision surfaces as
// gorm.ErrDuplicatedKey via the store's unique constraint.
func (r *MySQLRepository) CreateLink(ctx context.Context, link *model.ShortLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetLinkByID retrieves a short link by id regardless of its active flag
func (r *MySQLRepository) GetLinkByID(ctx context.Context, id string) (*model.ShortLink, error) {
	var link model.ShortLink
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkBySlug retrieves a short link by slug regardless of its active
// flag; callers decide whether inactive links are visible.
func (r *MySQLRepository) GetLinkBySlug(ctx context.Context, slug string) (*model.ShortLink, error) {
	var link model.ShortLink
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// SlugExists checks if a slug is taken by any link, active or not
func (r *MySQLRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// UpdateLink persists all columns of the link by primary key
func (r *MySQLRepository) UpdateLink(ctx context.Context, link *model.ShortLink) error {
	return r.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Where("id = ?", link.ID).
		Updates(map[string]interface{}{
			"slug":         link.Slug,
			"original_url": link.OriginalURL,
			"is_active":    link.IsActive,
		}).Error
}

// DeleteLink removes a link and all of its visits in one transaction
func (r *MySQLRepository) DeleteLink(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&model.Visit{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.ShortLink{}).Error
	})
}

// ListLinks returns links newest first, each with its visit count
// computed by the store. A nil ownerID lists all links.
func (r *MySQLRepository) ListLinks(ctx context.Context, ownerID *string) ([]model.ShortLink, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Select("`short_links`.*, count(`visits`.`id`) AS visit_count").
		Joins("LEFT JOIN `visits` ON `visits`.`link_id` = `short_links`.`id`").
		Group("`short_links`.`id`").
		Order("`short_links`.`created_at` DESC")

	if ownerID != nil {
		query = query.Where("`short_links`.`user_id` = ?", *ownerID)
	}

	var links []model.ShortLink
	err := query.Find(&links).Error
	return links, err
}

// CreateVisit appends one visit row
func (r *MySQLRepository) CreateVisit(ctx context.Context, visit *model.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

// CountVisits returns the number of visit rows for a link
func (r *MySQLRepository) CountVisits(ctx context.Context, linkID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Where("link_id = ?", linkID).
		Count(&count).Error
	return count, err
}

// LastVisitAt returns the newest visit timestamp for a link, or nil
// when the link has no visits
func (r *MySQLRepository) LastVisitAt(ctx context.Context, linkID string) (*time.Time, error) {
	var last sql.NullTime
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Where("link_id = ?", linkID).
		Select("max(`created_at`)").
		Scan(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
