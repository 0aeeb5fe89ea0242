package googletasks

import (
	"context"
	"strconv"
	"time"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
)

// StoredTokenSource reads the bearer token the user supplied through the
// settings surface. The interactive consent flow happens outside this
// process; an absent or expired token surfaces domain.ErrRemoteAuth so
// the caller can send the user back to settings.
type StoredTokenSource struct {
	repo ports.StateRepository
	now  func() time.Time
}

var _ ports.TokenSource = (*StoredTokenSource)(nil)

func NewStoredTokenSource(repo ports.StateRepository) *StoredTokenSource {
	return &StoredTokenSource{repo: repo, now: time.Now}
}

func (s *StoredTokenSource) Token(ctx context.Context) (string, error) {
	clientID, err := s.repo.GetSetting(ctx, ports.SettingClientID)
	if err != nil {
		return "", err
	}
	if clientID == "" {
		return "", domain.ErrMissingClientID
	}

	token, err := s.repo.GetSetting(ctx, ports.SettingAccessToken)
	if err != nil {
		return "", err
	}
	expiryRaw, err := s.repo.GetSetting(ctx, ports.SettingTokenExpiry)
	if err != nil {
		return "", err
	}

	if token == "" || expiryRaw == "" {
		return "", domain.ErrRemoteAuth
	}
	expiryMillis, err := strconv.ParseInt(expiryRaw, 10, 64)
	if err != nil || s.now().UnixMilli() >= expiryMillis {
		return "", domain.ErrRemoteAuth
	}
	return token, nil
}
