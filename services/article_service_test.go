package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blog-platform/models"
	"blog-platform/repositories"
)

func newArticleService(db *gorm.DB) ArticleService {
	return NewArticleService(repositories.NewArticleRepository(db), repositories.NewTagRepository(db))
}

func TestArticleServiceCreate(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	alice := createTestUser(t, users, "alice")

	published, err := articles.Create(models.CreateArticleRequest{
		Title:       "Getting Started with Go",
		Content:     "body",
		IsPublished: true,
	}, alice.ID)
	require.NoError(t, err)

	assert.Equal(t, "getting-started-with-go", published.Slug)
	assert.Equal(t, alice.ID, published.AuthorID)
	assert.EqualValues(t, 0, published.ViewCount)
	require.NotNil(t, published.PublishedAt)
	assert.WithinDuration(t, time.Now(), *published.PublishedAt, time.Minute)

	draft, err := articles.Create(models.CreateArticleRequest{
		Title:   "Unfinished Thoughts",
		Content: "wip",
	}, alice.ID)
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)
	assert.Nil(t, draft.PublishedAt)
}

func TestArticleServiceSlugCollision(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	alice := createTestUser(t, users, "alice")

	first, err := articles.Create(models.CreateArticleRequest{Title: "Same Title", Content: "a"}, alice.ID)
	require.NoError(t, err)
	second, err := articles.Create(models.CreateArticleRequest{Title: "Same Title", Content: "b"}, alice.ID)
	require.NoError(t, err)
	third, err := articles.Create(models.CreateArticleRequest{Title: "Same Title", Content: "c"}, alice.ID)
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.Equal(t, "same-title-2", second.Slug)
	assert.Equal(t, "same-title-3", third.Slug)
}

func TestArticleServiceUpdate(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	alice := createTestUser(t, users, "alice")

	article, err := articles.Create(models.CreateArticleRequest{Title: "Draft", Content: "v1"}, alice.ID)
	require.NoError(t, err)

	content := "v2"
	updated, err := articles.Update(article.ID, models.UpdateArticleRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
	assert.Equal(t, "draft", updated.Slug, "slug stays put while the title is unchanged")

	title := "Final Title"
	updated, err = articles.Update(article.ID, models.UpdateArticleRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "final-title", updated.Slug)

	missing, err := articles.Update(999, models.UpdateArticleRequest{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestArticleServicePublishedAtSetOnce(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	alice := createTestUser(t, users, "alice")

	article, err := articles.Create(models.CreateArticleRequest{Title: "Draft", Content: "v1"}, alice.ID)
	require.NoError(t, err)

	published := true
	updated, err := articles.Update(article.ID, models.UpdateArticleRequest{IsPublished: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	firstPublish := *updated.PublishedAt

	unpublished := false
	_, err = articles.Update(article.ID, models.UpdateArticleRequest{IsPublished: &unpublished})
	require.NoError(t, err)

	updated, err = articles.Update(article.ID, models.UpdateArticleRequest{IsPublished: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, firstPublish.Unix(), updated.PublishedAt.Unix(), "republishing must not move the original timestamp")
}

func TestArticleServiceTags(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	tags := NewTagService(repositories.NewTagRepository(db))
	alice := createTestUser(t, users, "alice")

	golang, err := tags.Create(models.CreateTagRequest{Name: "Go"})
	require.NoError(t, err)
	web, err := tags.Create(models.CreateTagRequest{Name: "Web"})
	require.NoError(t, err)

	article, err := articles.Create(models.CreateArticleRequest{
		Title:   "Tagged",
		Content: "body",
		TagIDs:  []uint{golang.ID, 999},
	}, alice.ID)
	require.NoError(t, err)
	require.Len(t, article.Tags, 1, "unknown tag ids are skipped")
	assert.Equal(t, "Go", article.Tags[0].Name)

	// Absent tag_ids leaves the set alone.
	content := "body v2"
	updated, err := articles.Update(article.ID, models.UpdateArticleRequest{Content: &content})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)

	// A present list replaces the set wholesale.
	updated, err = articles.Update(article.ID, models.UpdateArticleRequest{TagIDs: []uint{web.ID}})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "Web", updated.Tags[0].Name)

	updated, err = articles.Update(article.ID, models.UpdateArticleRequest{TagIDs: []uint{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestArticleServiceListing(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	older, err := articles.Create(models.CreateArticleRequest{Title: "Public", Content: "a", IsPublished: true}, alice.ID)
	require.NoError(t, err)
	_, err = articles.Create(models.CreateArticleRequest{Title: "Hidden", Content: "b"}, alice.ID)
	require.NoError(t, err)
	newer, err := articles.Create(models.CreateArticleRequest{Title: "Bobs", Content: "c", IsPublished: true}, bob.ID)
	require.NoError(t, err)

	// Pin creation times so the ordering assertion cannot ride on insert
	// order alone.
	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&models.Article{}).Where("id = ?", older.ID).
		UpdateColumn("created_at", base).Error)
	require.NoError(t, db.Model(&models.Article{}).Where("id = ?", newer.ID).
		UpdateColumn("created_at", base.Add(time.Minute)).Error)

	published, err := articles.GetPublished()
	require.NoError(t, err)
	require.Len(t, published, 2)
	for _, a := range published {
		assert.True(t, a.IsPublished)
	}
	assert.Equal(t, "Bobs", published[0].Title, "listings are newest first")
	assert.Equal(t, "Public", published[1].Title)

	drafts, err := articles.GetDrafts()
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Hidden", drafts[0].Title)

	byAuthor, err := articles.GetByAuthor(alice.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)
}

func TestArticleServiceViewCount(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	alice := createTestUser(t, users, "alice")

	article, err := articles.Create(models.CreateArticleRequest{Title: "Counted", Content: "a", IsPublished: true}, alice.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, articles.IncrementViewCount(article.ID))
	}

	reloaded, err := articles.GetByID(article.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, reloaded.ViewCount)
}

func TestArticleServiceDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	tags := NewTagService(repositories.NewTagRepository(db))
	comments := NewCommentService(repositories.NewCommentRepository(db), repositories.NewArticleRepository(db))
	alice := createTestUser(t, users, "alice")

	tag, err := tags.Create(models.CreateTagRequest{Name: "Go"})
	require.NoError(t, err)

	article, err := articles.Create(models.CreateArticleRequest{
		Title:       "Doomed",
		Content:     "body",
		IsPublished: true,
		TagIDs:      []uint{tag.ID},
	}, alice.ID)
	require.NoError(t, err)

	_, err = comments.Create(models.CreateCommentRequest{Content: "hi", ArticleID: article.ID}, alice.ID)
	require.NoError(t, err)

	deleted, err := articles.Delete(article.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.ArticleTag{}))
	// The tag itself outlives the link.
	assert.EqualValues(t, 1, countRows(t, db, &models.Tag{}))

	deleted, err = articles.Delete(article.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
