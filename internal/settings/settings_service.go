package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	settingserrors "go-payroll/internal/settings/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const cacheTTL = 10 * time.Minute

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, key, value string) (SettingResponse, error)
	GetByKey(ctx context.Context, key string) (SettingResponse, error)
	GetAll(ctx context.Context) ([]SettingResponse, error)
}

type service struct {
	repo Repository
	rdb  *redis.Client
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func NewServiceWithCache(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb}
}

func (s *service) Upsert(ctx context.Context, key, value string) (SettingResponse, error) {
	setting, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		return SettingResponse{}, err
	}

	s.invalidate(ctx, key)

	return mapToResponse(*setting), nil
}

func (s *service) GetByKey(ctx context.Context, key string) (SettingResponse, error) {
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingResponse{}, settingserrors.ErrSettingNotFound
		}
		return SettingResponse{}, err
	}

	resp := mapToResponse(*setting)
	s.fillCache(ctx, key, resp)
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]SettingResponse, error) {
	settings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]SettingResponse, len(settings))
	for i, setting := range settings {
		resp[i] = mapToResponse(setting)
	}
	return resp, nil
}

func cacheKey(key string) string {
	return "settings:" + key
}

func (s *service) fromCache(ctx context.Context, key string) (SettingResponse, bool) {
	if s.rdb == nil {
		return SettingResponse{}, false
	}

	val, err := s.rdb.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		return SettingResponse{}, false
	}

	var resp SettingResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return SettingResponse{}, false
	}
	return resp, true
}

func (s *service) fillCache(ctx context.Context, key string, resp SettingResponse) {
	if s.rdb == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(key), payload, cacheTTL).Err(); err != nil {
		contextutil.GetLogger(ctx).Warn("fill settings cache failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) invalidate(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKey(key)).Err(); err != nil {
		contextutil.GetLogger(ctx).Warn("invalidate settings cache failed", zap.String("key", key), zap.Error(err))
	}
}

func mapToResponse(setting Setting) SettingResponse {
	return SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt.Format(time.RFC3339),
	}
}
