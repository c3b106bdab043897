package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// PostService manages community board posts and their comments.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *PostService {
	return &PostService{postRepo: postRepo, commentRepo: commentRepo}
}

// CreatePost publishes a new post on the community board.
func (s *PostService) CreatePost(ctx context.Context, userID uint, title, content string) (*models.Post, error) {
	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns one post with its author preloaded.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts returns board posts newest first.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

// ListPostsByUser returns one user's posts newest first.
func (s *PostService) ListPostsByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}

// DeletePost removes a post and all of its comments. Only the post's author
// may delete it.
func (s *PostService) DeletePost(ctx context.Context, postID, actingUserID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actingUserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.DeleteWithComments(ctx, postID)
}

// AddComment attaches a comment to an existing post.
func (s *PostService) AddComment(ctx context.Context, postID, userID uint, content string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments in thread order, oldest first.
func (s *PostService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
