package settings

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, key, value string) (*Setting, error)
	FindByKey(ctx context.Context, key string) (*Setting, error)
	FindAll(ctx context.Context) ([]Setting, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert creates the key on first write and updates it afterwards. The
// conflict target makes concurrent writers last-write-wins rather than
// erroring.
func (r *repository) Upsert(ctx context.Context, key, value string) (*Setting, error) {
	var setting Setting
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO settings (key, value, created_at, updated_at)
		VALUES (?, ?, now(), now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
		RETURNING key, value, created_at, updated_at
	`, key, value).Scan(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *repository) FindByKey(ctx context.Context, key string) (*Setting, error) {
	var setting Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	return &setting, err
}

func (r *repository) FindAll(ctx context.Context) ([]Setting, error) {
	var settings []Setting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}
