package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// userService handles account-related business logic.
type userService struct {
	db       *gorm.DB
	hashCost int
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db, hashCost: bcrypt.DefaultCost}
}

// Register creates a user with a bcrypt-hashed password.
func (s *userService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if username == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username and password are required")
	}

	if err := s.checkAvailable(username, email, 0); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if email != "" {
		user.Email = &email
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent signup; report which field.
			if cerr := s.checkAvailable(username, email, 0); cerr != nil {
				return nil, cerr
			}
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// Authenticate matches identifier against the username or the email and
// verifies the password. Every failure reads the same to the caller.
func (s *userService) Authenticate(identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	var user models.User
	err := s.db.Where("username = ? OR email = ?", identifier, normalizeEmail(identifier)).
		Order("id").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdateProfile changes the email and/or password. Empty arguments leave
// the field untouched.
func (s *userService) UpdateProfile(userID uint, email, password string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	email = normalizeEmail(email)
	if email != "" && email != user.EmailOrEmpty() {
		if err := s.checkAvailable("", email, userID); err != nil {
			return nil, err
		}
		updates["email"] = email
	}

	if password != "" {
		hash, err := s.hashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetUserByID(userID)
}

// DeleteAccount removes the user and everything it owns in one transaction.
func (s *userService) DeleteAccount(userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Budget{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// checkAvailable reports a conflict if username or email is taken by a user
// other than exceptID. Empty values are not checked.
func (s *userService) checkAvailable(username, email string, exceptID uint) error {
	if username != "" {
		taken, err := s.exists("username = ?", username, exceptID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrDuplicateUsername
		}
	}

	if email != "" {
		taken, err := s.exists("email = ?", email, exceptID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrDuplicateEmail
		}
	}

	return nil
}

func (s *userService) exists(cond string, value string, exceptID uint) (bool, error) {
	q := s.db.Model(&models.User{}).Where(cond, value)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at most 72 bytes")
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
