package service

import (
	"context"

	"skillswap/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(ctx context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type skillRepoStub struct {
	getByIDFn   func(context.Context, uint) (*models.Skill, error)
	getByNameFn func(context.Context, string) (*models.Skill, error)
	createFn    func(context.Context, *models.Skill) error
	listFn      func(context.Context) ([]models.Skill, error)
}

func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	return s.getByNameFn(ctx, name)
}
func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) List(ctx context.Context) ([]models.Skill, error) {
	return s.listFn(ctx)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		getByIDFn:   func(ctx context.Context, id uint) (*models.Skill, error) { return &models.Skill{ID: id}, nil },
		getByNameFn: func(context.Context, string) (*models.Skill, error) { return nil, nil },
		createFn:    func(context.Context, *models.Skill) error { return nil },
		listFn:      func(context.Context) ([]models.Skill, error) { return nil, nil },
	}
}

type profileRepoStub struct {
	createFn          func(context.Context, *models.SkillProfile) error
	getByIDFn         func(context.Context, uint) (*models.SkillProfile, error)
	getByTripleFn     func(context.Context, uint, uint, bool) (*models.SkillProfile, error)
	listByUserFn      func(context.Context, uint, bool) ([]models.SkillProfile, error)
	listBySkillFn     func(context.Context, uint, bool) ([]models.SkillProfile, error)
	skillIDsForUserFn func(context.Context, uint) ([]uint, error)
}

func (s *profileRepoStub) Create(ctx context.Context, profile *models.SkillProfile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.SkillProfile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) GetByTriple(ctx context.Context, userID, skillID uint, isTeacher bool) (*models.SkillProfile, error) {
	return s.getByTripleFn(ctx, userID, skillID, isTeacher)
}
func (s *profileRepoStub) ListByUser(ctx context.Context, userID uint, isTeacher bool) ([]models.SkillProfile, error) {
	return s.listByUserFn(ctx, userID, isTeacher)
}
func (s *profileRepoStub) ListBySkill(ctx context.Context, skillID uint, isTeacher bool) ([]models.SkillProfile, error) {
	return s.listBySkillFn(ctx, skillID, isTeacher)
}
func (s *profileRepoStub) SkillIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	return s.skillIDsForUserFn(ctx, userID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		createFn:          func(context.Context, *models.SkillProfile) error { return nil },
		getByIDFn:         func(ctx context.Context, id uint) (*models.SkillProfile, error) { return &models.SkillProfile{ID: id}, nil },
		getByTripleFn:     func(context.Context, uint, uint, bool) (*models.SkillProfile, error) { return nil, nil },
		listByUserFn:      func(context.Context, uint, bool) ([]models.SkillProfile, error) { return nil, nil },
		listBySkillFn:     func(context.Context, uint, bool) ([]models.SkillProfile, error) { return nil, nil },
		skillIDsForUserFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type connectionRepoStub struct {
	createFn            func(context.Context, *models.Connection) error
	getByIDFn           func(context.Context, uint) (*models.Connection, error)
	getActiveByTripleFn func(context.Context, uint, uint, uint) (*models.Connection, error)
	updateStatusFn      func(context.Context, uint, models.ConnectionStatus) error
	listAsTeacherFn     func(context.Context, uint) ([]models.Connection, error)
	listAsLearnerFn     func(context.Context, uint) ([]models.Connection, error)
	listAcceptedFn      func(context.Context, uint) ([]models.Connection, error)
}

func (s *connectionRepoStub) Create(ctx context.Context, connection *models.Connection) error {
	return s.createFn(ctx, connection)
}
func (s *connectionRepoStub) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	return s.getByIDFn(ctx, id)
}
func (s *connectionRepoStub) GetActiveByTriple(ctx context.Context, teacherID, learnerID, skillID uint) (*models.Connection, error) {
	return s.getActiveByTripleFn(ctx, teacherID, learnerID, skillID)
}
func (s *connectionRepoStub) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	return s.updateStatusFn(ctx, connectionID, status)
}
func (s *connectionRepoStub) ListAsTeacher(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.listAsTeacherFn(ctx, userID)
}
func (s *connectionRepoStub) ListAsLearner(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.listAsLearnerFn(ctx, userID)
}
func (s *connectionRepoStub) ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.listAcceptedFn(ctx, userID)
}

func noopConnectionRepo() *connectionRepoStub {
	return &connectionRepoStub{
		createFn: func(context.Context, *models.Connection) error { return nil },
		getByIDFn: func(ctx context.Context, id uint) (*models.Connection, error) {
			return &models.Connection{ID: id}, nil
		},
		getActiveByTripleFn: func(context.Context, uint, uint, uint) (*models.Connection, error) { return nil, nil },
		updateStatusFn:      func(context.Context, uint, models.ConnectionStatus) error { return nil },
		listAsTeacherFn:     func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		listAsLearnerFn:     func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		listAcceptedFn:      func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
	}
}

type resourceRepoStub struct {
	createFn       func(context.Context, *models.Resource) error
	getByIDFn      func(context.Context, uint) (*models.Resource, error)
	listBySkillsFn func(context.Context, []uint) ([]models.Resource, error)
}

func (s *resourceRepoStub) Create(ctx context.Context, resource *models.Resource) error {
	return s.createFn(ctx, resource)
}
func (s *resourceRepoStub) GetByID(ctx context.Context, id uint) (*models.Resource, error) {
	return s.getByIDFn(ctx, id)
}
func (s *resourceRepoStub) ListBySkills(ctx context.Context, skillIDs []uint) ([]models.Resource, error) {
	return s.listBySkillsFn(ctx, skillIDs)
}

func noopResourceRepo() *resourceRepoStub {
	return &resourceRepoStub{
		createFn:       func(context.Context, *models.Resource) error { return nil },
		getByIDFn:      func(ctx context.Context, id uint) (*models.Resource, error) { return &models.Resource{ID: id}, nil },
		listBySkillsFn: func(context.Context, []uint) ([]models.Resource, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn             func(context.Context, *models.Post) error
	getByIDFn            func(context.Context, uint) (*models.Post, error)
	listFn               func(context.Context, int, int) ([]models.Post, error)
	listByUserFn         func(context.Context, uint, int, int) ([]models.Post, error)
	deleteWithCommentsFn func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) DeleteWithComments(ctx context.Context, id uint) error {
	return s.deleteWithCommentsFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:             func(context.Context, *models.Post) error { return nil },
		getByIDFn:            func(ctx context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:               func(context.Context, int, int) ([]models.Post, error) { return nil, nil },
		listByUserFn:         func(context.Context, uint, int, int) ([]models.Post, error) { return nil, nil },
		deleteWithCommentsFn: func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(ctx context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
	}
}
