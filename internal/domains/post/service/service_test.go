package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentmodel "newsroom-backend/internal/domains/comment/model"
	"newsroom-backend/internal/domains/post/model"
)

// =====================================================
// FAKES
// =====================================================

type fakePostRepo struct {
	bySlug map[string]*model.Post
	posts  []*model.Post

	incremented []uuid.UUID
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{bySlug: map[string]*model.Post{}}
}

func (r *fakePostRepo) add(p *model.Post) {
	r.bySlug[p.Slug] = p
	r.posts = append(r.posts, p)
}

func (r *fakePostRepo) GetBySlug(_ context.Context, slug string) (*model.Post, error) {
	p, ok := r.bySlug[slug]
	if !ok || p.Status != model.StatusPublished {
		return nil, model.ErrPostNotFound
	}
	return p, nil
}

func (r *fakePostRepo) List(_ context.Context, _ model.ListPostsRequest) ([]model.Post, int, error) {
	out := r.published(nil)
	return out, len(out), nil
}

func (r *fakePostRepo) ListByCategorySlug(_ context.Context, slug string) ([]model.Post, error) {
	var out []model.Post
	for _, p := range r.sortedNewestFirst() {
		if p.Category.Slug == slug && p.Status == model.StatusPublished {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListFeatured(_ context.Context, limit int) ([]model.Post, error) {
	var out []model.Post
	for _, p := range r.sortedNewestFirst() {
		if p.IsFeatured && p.Status == model.StatusPublished && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListLatest(_ context.Context, limit int, excludeIDs []uuid.UUID) ([]model.Post, error) {
	excluded := toSet(excludeIDs)
	var out []model.Post
	for _, p := range r.sortedNewestFirst() {
		if p.Status == model.StatusPublished && !excluded[p.ID] && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListByCategoryID(_ context.Context, categoryID, excludeID uuid.UUID, limit int) ([]model.Post, error) {
	var out []model.Post
	for _, p := range r.sortedNewestFirst() {
		if p.Category.ID == categoryID && p.ID != excludeID && p.Status == model.StatusPublished && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListByTagTokens(_ context.Context, tokens []string, excludeIDs []uuid.UUID, limit int) ([]model.Post, error) {
	excluded := toSet(excludeIDs)
	var out []model.Post
	for _, p := range r.sortedNewestFirst() {
		if p.Status != model.StatusPublished || excluded[p.ID] || len(out) >= limit {
			continue
		}
		for _, token := range tokens {
			if strings.Contains(strings.ToLower(p.Tags), token) {
				out = append(out, *p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetPreviousPublished(_ context.Context, createdAt time.Time) (*model.Post, error) {
	var best *model.Post
	for _, p := range r.posts {
		if p.Status != model.StatusPublished || !p.CreatedAt.Before(createdAt) {
			continue
		}
		if best == nil || p.CreatedAt.After(best.CreatedAt) {
			best = p
		}
	}
	if best == nil {
		return nil, model.ErrPostNotFound
	}
	return best, nil
}

func (r *fakePostRepo) GetNextPublished(_ context.Context, createdAt time.Time) (*model.Post, error) {
	var best *model.Post
	for _, p := range r.posts {
		if p.Status != model.StatusPublished || !p.CreatedAt.After(createdAt) {
			continue
		}
		if best == nil || p.CreatedAt.Before(best.CreatedAt) {
			best = p
		}
	}
	if best == nil {
		return nil, model.ErrPostNotFound
	}
	return best, nil
}

func (r *fakePostRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	r.incremented = append(r.incremented, id)
	return nil
}

func (r *fakePostRepo) published(excluded map[uuid.UUID]bool) []model.Post {
	var out []model.Post
	for _, p := range r.sortedNewestFirst() {
		if p.Status == model.StatusPublished && !excluded[p.ID] {
			out = append(out, *p)
		}
	}
	return out
}

func (r *fakePostRepo) sortedNewestFirst() []*model.Post {
	sorted := make([]*model.Post, len(r.posts))
	copy(sorted, r.posts)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].CreatedAt.After(sorted[i].CreatedAt) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	return sorted
}

func toSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

type fakeCommentResolver struct {
	trees map[uuid.UUID][]commentmodel.CommentNode
}

func (f *fakeCommentResolver) GetCommentTree(_ context.Context, postID uuid.UUID) ([]commentmodel.CommentNode, error) {
	if f.trees == nil {
		return []commentmodel.CommentNode{}, nil
	}
	return f.trees[postID], nil
}

type fakeCache struct {
	store map[string][]byte
	sets  int
}

func (f *fakeCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (f *fakeCache) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	if f.store == nil {
		f.store = map[string][]byte{}
	}
	f.store[key] = nil
	f.sets++
	return nil
}

func (f *fakeCache) Delete(_ context.Context, _ ...string) error { return nil }
func (f *fakeCache) Ping(_ context.Context) error                { return nil }

// =====================================================
// TEST DATA
// =====================================================

var (
	newsCategory = model.CategoryInfo{ID: uuid.New(), Name: "News", Slug: "news"}
	techCategory = model.CategoryInfo{ID: uuid.New(), Name: "Tech", Slug: "tech"}
)

func makePost(slug string, category model.CategoryInfo, tags string, createdAt time.Time) *model.Post {
	return &model.Post{
		ID:        uuid.New(),
		Title:     slug,
		Slug:      slug,
		Category:  category,
		Tags:      tags,
		Status:    model.StatusPublished,
		CreatedAt: createdAt,
	}
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC)
}

// =====================================================
// RELATED POSTS
// =====================================================

func TestGetRelatedPosts_CategoryTierFirst(t *testing.T) {
	repo := newFakePostRepo()
	source := makePost("source", newsCategory, "go,backend", at(12))
	repo.add(source)

	sameCat1 := makePost("same-cat-1", newsCategory, "", at(11))
	sameCat2 := makePost("same-cat-2", newsCategory, "", at(10))
	sameCat3 := makePost("same-cat-3", newsCategory, "", at(9))
	sameCat4 := makePost("same-cat-4", newsCategory, "", at(8))
	tagged := makePost("tagged", techCategory, "go,cloud", at(7))
	repo.add(sameCat1)
	repo.add(sameCat2)
	repo.add(sameCat3)
	repo.add(sameCat4)
	repo.add(tagged)

	svc := NewPostService(repo, &fakeCommentResolver{}, nil)
	related, err := svc.GetRelatedPosts(context.Background(), "source")
	require.NoError(t, err)

	// Category tier is capped at 3 even with 4 candidates; the tag tier
	// fills the fourth slot.
	require.Len(t, related, 4)
	assert.Equal(t, sameCat1.ID, related[0].ID)
	assert.Equal(t, sameCat2.ID, related[1].ID)
	assert.Equal(t, sameCat3.ID, related[2].ID)
	assert.Equal(t, tagged.ID, related[3].ID)
}

func TestGetRelatedPosts_FallbackFillsQuota(t *testing.T) {
	repo := newFakePostRepo()
	source := makePost("source", newsCategory, "", at(12))
	repo.add(source)

	// No category siblings, no tags: everything comes from the fallback
	other1 := makePost("other-1", techCategory, "", at(11))
	other2 := makePost("other-2", techCategory, "", at(10))
	repo.add(other1)
	repo.add(other2)

	svc := NewPostService(repo, &fakeCommentResolver{}, nil)
	related, err := svc.GetRelatedPosts(context.Background(), "source")
	require.NoError(t, err)

	require.Len(t, related, 2)
	assert.Equal(t, other1.ID, related[0].ID)
	assert.Equal(t, other2.ID, related[1].ID)
}

func TestGetRelatedPosts_NoDuplicatesAcrossTiers(t *testing.T) {
	repo := newFakePostRepo()
	source := makePost("source", newsCategory, "go", at(12))
	repo.add(source)

	// In the same category AND tagged AND recent: must appear once
	sibling := makePost("sibling", newsCategory, "go", at(11))
	filler1 := makePost("filler-1", techCategory, "", at(10))
	filler2 := makePost("filler-2", techCategory, "", at(9))
	filler3 := makePost("filler-3", techCategory, "", at(8))
	repo.add(sibling)
	repo.add(filler1)
	repo.add(filler2)
	repo.add(filler3)

	svc := NewPostService(repo, &fakeCommentResolver{}, nil)
	related, err := svc.GetRelatedPosts(context.Background(), "source")
	require.NoError(t, err)

	require.Len(t, related, 4)
	seen := map[uuid.UUID]bool{}
	for _, p := range related {
		assert.False(t, seen[p.ID], "duplicate post %s", p.Slug)
		assert.NotEqual(t, source.ID, p.ID, "source post leaked into results")
		seen[p.ID] = true
	}
}

func TestGetRelatedPosts_NeverExceedsLimit(t *testing.T) {
	repo := newFakePostRepo()
	source := makePost("source", newsCategory, "go", at(23))
	repo.add(source)

	for i := 0; i < 10; i++ {
		repo.add(makePost("extra-"+string(rune('a'+i)), newsCategory, "go", at(i)))
	}

	svc := NewPostService(repo, &fakeCommentResolver{}, nil)
	related, err := svc.GetRelatedPosts(context.Background(), "source")
	require.NoError(t, err)
	assert.Len(t, related, model.RelatedLimit)
}

func TestGetRelatedPosts_UnknownSlug(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo, &fakeCommentResolver{}, nil)

	_, err := svc.GetRelatedPosts(context.Background(), "nope")
	require.Error(t, err)

	var postErr *model.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Equal(t, model.ErrCodePostNotFound, postErr.Code)
}

// =====================================================
// ADJACENT POSTS
// =====================================================

func TestGetAdjacentPosts_MiddlePost(t *testing.T) {
	repo := newFakePostRepo()
	first := makePost("first", newsCategory, "", at(8))
	middle := makePost("middle", newsCategory, "", at(12))
	last := makePost("last", newsCategory, "", at(16))
	repo.add(first)
	repo.add(middle)
	repo.add(last)

	svc := NewPostService(repo, &fakeCommentResolver{}, nil)
	adj, err := svc.GetAdjacentPosts(context.Background(), "middle")
	require.NoError(t, err)

	require.NotNil(t, adj.Previous)
	require.NotNil(t, adj.Next)
	assert.Equal(t, first.ID, adj.Previous.ID)
	assert.Equal(t, last.ID, adj.Next.ID)
}

func TestGetAdjacentPosts_EarliestHasNoPrevious(t *testing.T) {
	repo := newFakePostRepo()
	first := makePost("first", newsCategory, "", at(8))
	second := makePost("second", newsCategory, "", at(12))
	repo.add(first)
	repo.add(second)

	svc := NewPostService(repo, &fakeCommentResolver{}, nil)
	adj, err := svc.GetAdjacentPosts(context.Background(), "first")
	require.NoError(t, err)

	assert.Nil(t, adj.Previous)
	require.NotNil(t, adj.Next)
	assert.Equal(t, second.ID, adj.Next.ID)
}

func TestGetAdjacentPosts_OnlyPost(t *testing.T) {
	repo := newFakePostRepo()
	repo.add(makePost("lonely", newsCategory, "", at(8)))

	svc := NewPostService(repo, &fakeCommentResolver{}, nil)
	adj, err := svc.GetAdjacentPosts(context.Background(), "lonely")
	require.NoError(t, err)

	assert.Nil(t, adj.Previous)
	assert.Nil(t, adj.Next)
}

// =====================================================
// DETAIL
// =====================================================

func TestGetPostDetail_BumpsViewsAndLoadsComments(t *testing.T) {
	repo := newFakePostRepo()
	post := makePost("story", newsCategory, "go", at(12))
	post.ViewsCount = 10
	repo.add(post)

	tree := []commentmodel.CommentNode{{ID: uuid.New(), PostID: post.ID, DisplayName: "Anonymous"}}
	resolver := &fakeCommentResolver{trees: map[uuid.UUID][]commentmodel.CommentNode{post.ID: tree}}

	svc := NewPostService(repo, resolver, nil)
	detail, err := svc.GetPostDetail(context.Background(), "story")
	require.NoError(t, err)

	assert.Equal(t, 11, detail.ViewsCount)
	assert.Equal(t, []uuid.UUID{post.ID}, repo.incremented)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, tree[0].ID, detail.Comments[0].ID)
}

func TestGetPostDetail_UnknownSlug(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo, &fakeCommentResolver{}, nil)

	_, err := svc.GetPostDetail(context.Background(), "missing")
	require.Error(t, err)

	var postErr *model.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Equal(t, model.ErrCodePostNotFound, postErr.Code)
}

// =====================================================
// SECTIONS
// =====================================================

func TestGetFeaturedPosts_PopulatesCache(t *testing.T) {
	repo := newFakePostRepo()
	featured := makePost("big-story", newsCategory, "", at(12))
	featured.IsFeatured = true
	repo.add(featured)
	repo.add(makePost("ordinary", newsCategory, "", at(11)))

	c := &fakeCache{}
	svc := NewPostService(repo, &fakeCommentResolver{}, c)

	posts, err := svc.GetFeaturedPosts(context.Background())
	require.NoError(t, err)

	require.Len(t, posts, 1)
	assert.Equal(t, featured.ID, posts[0].ID)
	assert.Equal(t, 1, c.sets)
}
