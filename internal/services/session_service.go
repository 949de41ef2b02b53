package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"spendwise/internal/auth"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/models"
)

// sessionService issues signed session tokens and tracks them server-side,
// so logout and account deletion revoke them before they expire.
type sessionService struct {
	db     *gorm.DB
	signer *auth.Signer
	now    func() time.Time
}

// NewSessionService creates a new SessionServicer.
func NewSessionService(db *gorm.DB, signer *auth.Signer) SessionServicer {
	return &sessionService{db: db, signer: signer, now: time.Now}
}

// Start signs a token for userID and records its hashed ID.
func (s *sessionService) Start(userID uint) (string, time.Time, error) {
	token, claims, err := s.signer.Sign(userID)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	session := &models.Session{
		UserID:    userID,
		TokenHash: auth.HashToken(claims.ID),
		ExpiresAt: claims.ExpiresAt.UTC(),
	}
	if err := s.db.Create(session).Error; err != nil {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return token, session.ExpiresAt, nil
}

// Resolve returns the user that owns a live session for token.
func (s *sessionService) Resolve(token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	claims, err := s.signer.Parse(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	var session models.Session
	if err := s.db.Where("token_hash = ?", auth.HashToken(claims.ID)).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if session.UserID != claims.UserID || !session.ExpiresAt.After(s.now()) {
		return nil, apperrors.ErrUnauthorized
	}

	var user models.User
	if err := s.db.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, nil
}

// End removes the session behind token. Unknown or malformed tokens are
// ignored.
func (s *sessionService) End(token string) error {
	id, err := s.signer.TokenID(token)
	if err != nil {
		return nil
	}

	if err := s.db.Where("token_hash = ?", auth.HashToken(id)).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// PurgeExpired deletes sessions past their expiry and returns how many
// were removed.
func (s *sessionService) PurgeExpired() (int64, error) {
	result := s.db.Where("expires_at < ?", s.now().UTC()).Delete(&models.Session{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Get().Infow("purged expired sessions", "count", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
