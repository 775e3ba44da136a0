package stores

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/utils"
)

// defaultAuthor labels posts until post authorship is tied to accounts.
const defaultAuthor = "Anonymous"

// PostPatch carries optional replacement fields for an update. An empty
// string means "not provided" and keeps the stored value, so an explicit
// empty title or content cannot be set through an update.
type PostPatch struct {
	Title    string
	Content  string
	Category string
}

// PostStore owns post records and their invariants: titles are unique and
// the category reference is stored unchecked.
type PostStore struct {
	db *gorm.DB
}

// NewPostStore creates a PostStore backed by db.
func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// Create inserts a new post. Title and content are required as given; only
// what is stored is HTML-sanitized, so markup-heavy input is not mistaken for
// a missing field. The title must be unused (the unique index on posts.title
// is the authoritative guard, the lookup is a fast path for a friendlier
// error). The category identity, when given, is stored without an existence
// check.
func (s *PostStore) Create(title, content, categoryID string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" || content == "" {
		return nil, ErrMissingPostFields
	}
	title = utils.Sanitize(title)
	content = utils.Sanitize(content)

	var existing models.Post
	if err := s.db.Where("title = ?", title).First(&existing).Error; err == nil {
		return nil, ErrTitleTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	post := models.Post{Title: title, Content: content, Author: defaultAuthor}
	if categoryID != "" {
		post.CategoryID = &categoryID
	}

	if err := s.db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}

	return s.Get(post.ID)
}

// List returns all posts, newest first, with their category expanded.
func (s *PostStore) List() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("Category").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get returns a single post with its category expanded. A dangling category
// reference simply yields a nil Category.
func (s *PostStore) Get(id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Category").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Update merges the patch into the stored post field by field: only fields
// present in the patch override, everything else keeps its value. Overriding
// fields are sanitized like on create, and a new title must be unused.
func (s *PostStore) Update(id string, patch PostPatch) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if title := strings.TrimSpace(patch.Title); title != "" {
		title = utils.Sanitize(title)
		if title != post.Title {
			var existing models.Post
			if err := s.db.Where("title = ? AND id <> ?", title, post.ID).First(&existing).Error; err == nil {
				return nil, ErrTitleTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		post.Title = title
	}
	if patch.Content != "" {
		post.Content = utils.Sanitize(patch.Content)
	}
	if patch.Category != "" {
		category := patch.Category
		post.CategoryID = &category
	}

	if err := s.db.Save(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}

	return s.Get(post.ID)
}

// Delete hard-deletes a post. There is no tombstone.
func (s *PostStore) Delete(id string) error {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&post).Error
}
