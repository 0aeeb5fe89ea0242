package service

import (
	"context"
	"strconv"
	"time"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
)

// SettingsService reads and writes the credential and preference keys.
type SettingsService struct {
	repo ports.StateRepository
	now  func() time.Time
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(repo ports.StateRepository) *SettingsService {
	return &SettingsService{repo: repo, now: time.Now}
}

func (s *SettingsService) Settings(ctx context.Context) (domain.Settings, error) {
	apiKey, err := s.repo.GetSetting(ctx, ports.SettingGeminiAPIKey)
	if err != nil {
		return domain.Settings{}, err
	}
	clientID, err := s.repo.GetSetting(ctx, ports.SettingClientID)
	if err != nil {
		return domain.Settings{}, err
	}

	token, err := s.repo.GetSetting(ctx, ports.SettingAccessToken)
	if err != nil {
		return domain.Settings{}, err
	}
	expiryRaw, err := s.repo.GetSetting(ctx, ports.SettingTokenExpiry)
	if err != nil {
		return domain.Settings{}, err
	}

	hasToken := false
	if token != "" && expiryRaw != "" {
		if expiry, parseErr := strconv.ParseInt(expiryRaw, 10, 64); parseErr == nil {
			hasToken = s.now().UnixMilli() < expiry
		}
	}

	return domain.Settings{
		GeminiAPIKey:   apiKey,
		GoogleClientID: clientID,
		HasAccessToken: hasToken,
	}, nil
}

// SaveSettings writes the supplied fields. A new access token is cached
// with its expiry stamped domain.AccessTokenTTL from now.
func (s *SettingsService) SaveSettings(ctx context.Context, update domain.SettingsUpdate) error {
	if update.GeminiAPIKey != nil {
		if err := s.repo.SetSetting(ctx, ports.SettingGeminiAPIKey, *update.GeminiAPIKey); err != nil {
			return err
		}
	}
	if update.GoogleClientID != nil {
		if err := s.repo.SetSetting(ctx, ports.SettingClientID, *update.GoogleClientID); err != nil {
			return err
		}
	}
	if update.AccessToken != nil {
		if err := s.repo.SetSetting(ctx, ports.SettingAccessToken, *update.AccessToken); err != nil {
			return err
		}
		expiry := s.now().Add(domain.AccessTokenTTL).UnixMilli()
		if err := s.repo.SetSetting(ctx, ports.SettingTokenExpiry, strconv.FormatInt(expiry, 10)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettingsService) ViewMode(ctx context.Context) (domain.ViewMode, error) {
	raw, err := s.repo.GetSetting(ctx, ports.SettingViewMode)
	if err != nil {
		return "", err
	}
	if raw == string(domain.ViewModeDate) {
		return domain.ViewModeDate, nil
	}
	return domain.ViewModeCategory, nil
}

func (s *SettingsService) SetViewMode(ctx context.Context, mode domain.ViewMode) error {
	return s.repo.SetSetting(ctx, ports.SettingViewMode, string(mode))
}
