package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsroom-backend/internal/domains/comment/model"
	"newsroom-backend/internal/domains/comment/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) ServiceInterface {
	return &commentService{
		commentRepo: commentRepo,
	}
}

// =====================================================
// CREATE COMMENT
// =====================================================

func (s *commentService) CreateComment(
	ctx context.Context,
	caller Caller,
	req model.CreateCommentRequest,
) (*model.CommentNode, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the post
	exists, err := s.commentRepo.PostExists(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, model.NewPostNotFoundError()
	}

	// Step 3: Resolve the parent, if given. An unknown parent id makes
	// the comment top-level; a parent on another post is rejected.
	var parentID *uuid.UUID
	if req.Parent != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.Parent)
		if err != nil && !errors.Is(err, model.ErrCommentNotFound) {
			return nil, fmt.Errorf("failed to resolve parent comment: %w", err)
		}
		if parent != nil {
			if parent.PostID != req.PostID {
				return nil, model.NewParentMismatchError()
			}
			if err := s.checkThread(ctx, parent); err != nil {
				return nil, err
			}
			parentID = &parent.ID
		}
	}

	// Step 4: Build the comment entity. Authenticated callers are
	// recorded as the author even when name/email are supplied;
	// anonymous name/email are stored verbatim. New comments are
	// approved immediately (no moderation queue at creation time).
	comment := &model.Comment{
		ID:        uuid.New(),
		PostID:    req.PostID,
		ParentID:  parentID,
		Name:      req.Name,
		Email:     req.Email,
		Content:   req.Content,
		Approved:  true,
		CreatedAt: time.Now(),
	}
	if caller.UserID != nil {
		comment.AuthorID = caller.UserID
		comment.AuthorHandle = caller.Username
	}

	// Step 5: Save
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	node := model.ToCommentNode(comment)
	return &node, nil
}

// checkThread walks the parent chain iteratively and rejects threads that
// do not terminate (a parent that is its own descendant). Bounded by the
// chain length so corrupt data cannot loop forever.
func (s *commentService) checkThread(ctx context.Context, parent *model.Comment) error {
	const maxDepth = 1000

	seen := map[uuid.UUID]bool{parent.ID: true}
	current := parent

	for depth := 0; current.ParentID != nil; depth++ {
		if depth >= maxDepth || seen[*current.ParentID] {
			return model.NewInvalidThreadError()
		}

		next, err := s.commentRepo.GetByID(ctx, *current.ParentID)
		if err != nil {
			if errors.Is(err, model.ErrCommentNotFound) {
				// Dangling parent reference terminates the chain
				return nil
			}
			return fmt.Errorf("failed to walk comment thread: %w", err)
		}

		seen[next.ID] = true
		current = next
	}

	return nil
}

// =====================================================
// COMMENT TREE
// =====================================================

func (s *commentService) GetCommentTree(ctx context.Context, postID uuid.UUID) ([]model.CommentNode, error) {
	comments, err := s.commentRepo.ListApprovedByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return buildTree(comments), nil
}

func (s *commentService) ListComments(
	ctx context.Context,
	postID uuid.UUID,
	req model.ListCommentsRequest,
) ([]model.CommentNode, int, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	exists, err := s.commentRepo.PostExists(ctx, postID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, 0, model.NewPostNotFoundError()
	}

	comments, err := s.commentRepo.ListApprovedByPost(ctx, postID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load comments: %w", err)
	}

	tree := buildTree(comments)
	total := len(tree)

	// Paginate top-level comments only; replies ride along with their
	// parents.
	start := (req.Page - 1) * req.PageSize
	if start >= total {
		return []model.CommentNode{}, total, nil
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	return tree[start:end], total, nil
}

// buildTree assembles the nested reply tree from the flat adjacency list.
// Input is ordered newest-first and that order is preserved at the top
// level and inside every reply list. The tree is built level by level
// from the roots with an explicit queue, never by recursion, so
// arbitrarily deep threads cannot exhaust the stack. Replies whose parent
// is not in the approved set are unreachable from any root and are
// dropped, which also discards rows forming a parent cycle.
func buildTree(comments []model.Comment) []model.CommentNode {
	nodes := make(map[uuid.UUID]*model.CommentNode, len(comments))
	parentOf := make(map[uuid.UUID]uuid.UUID, len(comments))
	children := make(map[uuid.UUID][]uuid.UUID)
	rootIDs := make([]uuid.UUID, 0)

	for i := range comments {
		c := &comments[i]
		node := model.ToCommentNode(c)
		nodes[c.ID] = &node

		if c.ParentID == nil {
			rootIDs = append(rootIDs, c.ID)
			continue
		}
		parentOf[c.ID] = *c.ParentID
		children[*c.ParentID] = append(children[*c.ParentID], c.ID)
	}

	// Collect reachable nodes level by level
	levels := [][]uuid.UUID{}
	current := rootIDs
	for len(current) > 0 {
		levels = append(levels, current)
		next := make([]uuid.UUID, 0)
		for _, id := range current {
			next = append(next, children[id]...)
		}
		current = next
	}

	// Attach deepest level first so every subtree is complete before it
	// is copied into its parent's reply list.
	for l := len(levels) - 1; l >= 1; l-- {
		for _, id := range levels[l] {
			parent := nodes[parentOf[id]]
			parent.Replies = append(parent.Replies, *nodes[id])
		}
	}

	roots := make([]model.CommentNode, 0, len(rootIDs))
	for _, id := range rootIDs {
		roots = append(roots, *nodes[id])
	}

	return roots
}
