// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"skillswap/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password assigned to every seeded user.
const DefaultPassword = "password123"

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []string{
		"comments", "posts", "resources", "connections",
		"skill_profiles", "skills", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// SeedCommunity populates users, the skill catalog, skill declarations,
// connections, resources, and board posts. Returns the created users.
func (s *Seeder) SeedCommunity(numUsers, numPosts int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}

	log.Printf("Creating %d users...", numUsers)
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Password = string(hash)
		})
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	log.Println("Creating skill catalog...")
	skills, err := s.factory.CreateSkillCatalog()
	if err != nil {
		return nil, fmt.Errorf("creating skills: %w", err)
	}

	log.Println("Declaring skills...")
	profiles, err := s.seedProfiles(users, skills)
	if err != nil {
		return nil, err
	}

	log.Println("Creating connections...")
	if err := s.seedConnections(profiles); err != nil {
		return nil, err
	}

	log.Println("Sharing resources...")
	for _, user := range users {
		if rand.Intn(3) != 0 {
			continue
		}
		skill := skills[rand.Intn(len(skills))]
		if _, err := s.factory.CreateResource(user, skill); err != nil {
			return nil, fmt.Errorf("creating resource: %w", err)
		}
	}

	log.Printf("Creating %d board posts...", numPosts)
	for i := 0; i < numPosts; i++ {
		user := users[rand.Intn(len(users))]
		post, err := s.factory.CreatePost(user)
		if err != nil {
			return nil, fmt.Errorf("creating post: %w", err)
		}
		for j := 0; j < rand.Intn(4); j++ {
			commenter := users[rand.Intn(len(users))]
			if _, err := s.factory.CreateComment(post, commenter); err != nil {
				return nil, fmt.Errorf("creating comment: %w", err)
			}
		}
	}

	return users, nil
}

// seedProfiles gives each user a handful of teaching and learning
// declarations across the catalog.
func (s *Seeder) seedProfiles(users []*models.User, skills []*models.Skill) ([]*models.SkillProfile, error) {
	var profiles []*models.SkillProfile
	for _, user := range users {
		perm := rand.Perm(len(skills))
		declared := 1 + rand.Intn(4)
		if declared > len(skills) {
			declared = len(skills)
		}
		for _, idx := range perm[:declared] {
			profile, err := s.factory.CreateProfile(user, skills[idx], rand.Intn(2) == 0)
			if err != nil {
				return nil, fmt.Errorf("declaring skill: %w", err)
			}
			profiles = append(profiles, profile)
		}
	}
	return profiles, nil
}

// seedConnections pairs learner declarations with teacher declarations for
// the same skill and creates a mix of pending, accepted, and rejected
// connections.
func (s *Seeder) seedConnections(profiles []*models.SkillProfile) error {
	teachersBySkill := make(map[uint][]*models.SkillProfile)
	for _, p := range profiles {
		if p.IsTeacher {
			teachersBySkill[p.SkillID] = append(teachersBySkill[p.SkillID], p)
		}
	}

	statuses := []models.ConnectionStatus{
		models.ConnectionStatusPending,
		models.ConnectionStatusAccepted,
		models.ConnectionStatusRejected,
	}

	for _, p := range profiles {
		if p.IsTeacher || rand.Intn(2) == 0 {
			continue
		}
		teachers := teachersBySkill[p.SkillID]
		if len(teachers) == 0 {
			continue
		}
		teacher := teachers[rand.Intn(len(teachers))]
		if teacher.UserID == p.UserID {
			continue
		}
		status := statuses[rand.Intn(len(statuses))]
		if _, err := s.factory.CreateConnection(teacher.UserID, p.UserID, p.SkillID, status); err != nil {
			return fmt.Errorf("creating connection: %w", err)
		}
	}
	return nil
}
