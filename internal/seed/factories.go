package seed

import (
	"fmt"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// catalogSkills are the built-in skills seeded into the catalog. Names are
// unique; duplicates are skipped on reseed.
var catalogSkills = []struct {
	Name        string
	Description string
}{
	{"Guitar", "Acoustic and electric guitar, from first chords to improvisation"},
	{"Spanish", "Conversational and written Spanish"},
	{"Photography", "Composition, lighting, and editing"},
	{"Cooking", "Home cooking techniques and recipes"},
	{"Yoga", "Vinyasa and hatha practice"},
	{"Chess", "Openings, tactics, and endgames"},
	{"Woodworking", "Hand tool and power tool joinery"},
	{"Drawing", "Figure drawing and sketching fundamentals"},
	{"Piano", "Classical and pop piano"},
	{"French", "Conversational French and grammar"},
	{"Pottery", "Wheel throwing and hand building"},
	{"Running", "Training plans from couch to marathon"},
	{"Baking", "Bread, pastry, and cake work"},
	{"Gardening", "Vegetable and ornamental gardening"},
	{"Public Speaking", "Structuring and delivering talks"},
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 99)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   models.DefaultAvatar,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSkillCatalog persists the built-in skill catalog, skipping names
// that already exist.
func (f *Factory) CreateSkillCatalog() ([]*models.Skill, error) {
	skills := make([]*models.Skill, 0, len(catalogSkills))
	for _, entry := range catalogSkills {
		skill := &models.Skill{Name: entry.Name, Description: entry.Description}
		err := f.db.Where(models.Skill{Name: entry.Name}).FirstOrCreate(skill).Error
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

// CreateProfile declares a skill for a user in one role.
func (f *Factory) CreateProfile(user *models.User, skill *models.Skill, isTeacher bool) (*models.SkillProfile, error) {
	profile := &models.SkillProfile{
		UserID:    user.ID,
		SkillID:   skill.ID,
		IsTeacher: isTeacher,
		Level:     gofakeit.Number(models.MinSkillLevel, models.MaxSkillLevel),
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateConnection persists a connection in the given status.
func (f *Factory) CreateConnection(teacherID, learnerID, skillID uint, status models.ConnectionStatus) (*models.Connection, error) {
	connection := &models.Connection{
		TeacherID: teacherID,
		LearnerID: learnerID,
		SkillID:   skillID,
		Status:    status,
		Message:   gofakeit.Sentence(8),
	}
	if err := f.db.Create(connection).Error; err != nil {
		return nil, err
	}
	return connection, nil
}

// CreateResource shares a resource tagged with one skill.
func (f *Factory) CreateResource(user *models.User, skill *models.Skill) (*models.Resource, error) {
	resource := &models.Resource{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Sentence(12),
		URL:         gofakeit.URL(),
		SkillID:     skill.ID,
		UserID:      user.ID,
	}
	if err := f.db.Create(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

// CreatePost publishes a board post with a realistic created_at spread.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:  user.ID,
	}
	daysBack := rand.Intn(90)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(rand.Intn(24))*time.Hour)
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment attaches a comment to a post.
func (f *Factory) CreateComment(post *models.Post, user *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(10),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
