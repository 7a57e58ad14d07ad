package settings_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/settings"
	settingserrors "go-payroll/internal/settings/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSettingsRepository struct {
	upsertFn    func(ctx context.Context, key, value string) (*settings.Setting, error)
	findByKeyFn func(ctx context.Context, key string) (*settings.Setting, error)
	findAllFn   func(ctx context.Context) ([]settings.Setting, error)
}

func (f *fakeSettingsRepository) Upsert(ctx context.Context, key, value string) (*settings.Setting, error) {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, key, value)
	}
	return &settings.Setting{Key: key, Value: value}, nil
}

func (f *fakeSettingsRepository) FindByKey(ctx context.Context, key string) (*settings.Setting, error) {
	if f.findByKeyFn != nil {
		return f.findByKeyFn(ctx, key)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSettingsRepository) FindAll(ctx context.Context) ([]settings.Setting, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func TestSettingsService_Upsert(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSettingsRepository{
		upsertFn: func(ctx context.Context, key, value string) (*settings.Setting, error) {
			assert.Equal(t, "payroll_day", key)
			assert.Equal(t, "25", value)
			return &settings.Setting{Key: key, Value: value, UpdatedAt: time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)}, nil
		},
	}
	svc := settings.NewService(repo)

	resp, err := svc.Upsert(ctx, "payroll_day", "25")

	assert.NoError(t, err)
	assert.Equal(t, "payroll_day", resp.Key)
	assert.Equal(t, "25", resp.Value)
	assert.Equal(t, "2026-02-05T10:00:00Z", resp.UpdatedAt)
}

func TestSettingsService_Upsert_OverwritesValue(t *testing.T) {
	ctx := context.Background()

	store := map[string]string{"currency": "BDT"}
	repo := &fakeSettingsRepository{
		upsertFn: func(ctx context.Context, key, value string) (*settings.Setting, error) {
			store[key] = value
			return &settings.Setting{Key: key, Value: store[key]}, nil
		},
	}
	svc := settings.NewService(repo)

	resp, err := svc.Upsert(ctx, "currency", "USD")

	assert.NoError(t, err)
	assert.Equal(t, "USD", resp.Value)
	assert.Equal(t, "USD", store["currency"])
}

func TestSettingsService_GetByKey_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSettingsRepository{
		findByKeyFn: func(ctx context.Context, key string) (*settings.Setting, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := settings.NewService(repo)

	_, err := svc.GetByKey(ctx, "missing")

	assert.ErrorIs(t, err, settingserrors.ErrSettingNotFound)
}

func TestSettingsService_GetByKey(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSettingsRepository{
		findByKeyFn: func(ctx context.Context, key string) (*settings.Setting, error) {
			return &settings.Setting{Key: key, Value: "25"}, nil
		},
	}
	svc := settings.NewService(repo)

	resp, err := svc.GetByKey(ctx, "payroll_day")

	assert.NoError(t, err)
	assert.Equal(t, "25", resp.Value)
}

func TestSettingsService_GetAll(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSettingsRepository{
		findAllFn: func(ctx context.Context) ([]settings.Setting, error) {
			return []settings.Setting{
				{Key: "currency", Value: "BDT"},
				{Key: "payroll_day", Value: "25"},
			}, nil
		},
	}
	svc := settings.NewService(repo)

	resp, err := svc.GetAll(ctx)

	assert.NoError(t, err)
	if assert.Len(t, resp, 2) {
		assert.Equal(t, "currency", resp[0].Key)
		assert.Equal(t, "payroll_day", resp[1].Key)
	}
}
