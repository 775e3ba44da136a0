package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/utils"
)

// UserStore owns credential records. A plaintext password never leaves
// Create: it is hashed before the row is written and only the hash is stored.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore backed by db.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create registers a new user. The email must be unused; the unique index on
// users.email is the authoritative guard, the lookup below is only a fast
// path for a friendlier error message.
func (s *UserStore) Create(name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingUserFields
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail looks a user up by exact email.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID looks a user up by identity.
func (s *UserStore) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifySecret reports whether candidate matches the stored password hash.
func (s *UserStore) VerifySecret(user *models.User, candidate string) bool {
	return utils.CheckPassword(user.PasswordHash, candidate)
}
