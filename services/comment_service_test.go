package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blog-platform/models"
	"blog-platform/repositories"
)

func newCommentService(db *gorm.DB) CommentService {
	return NewCommentService(repositories.NewCommentRepository(db), repositories.NewArticleRepository(db))
}

func TestCommentServiceCreate(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	comments := newCommentService(db)

	alice := createTestUser(t, users, "alice")
	article, err := articles.Create(models.CreateArticleRequest{Title: "Post", Content: "body", IsPublished: true}, alice.ID)
	require.NoError(t, err)

	comment, err := comments.Create(models.CreateCommentRequest{Content: "first!", ArticleID: article.ID}, alice.ID)
	require.NoError(t, err)

	assert.Equal(t, "first!", comment.Content)
	assert.Equal(t, alice.ID, comment.UserID)
	assert.False(t, comment.IsApproved, "new comments await moderation")
	assert.Nil(t, comment.ParentID)
}

func TestCommentServiceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	comments := newCommentService(db)

	alice := createTestUser(t, users, "alice")
	first, err := articles.Create(models.CreateArticleRequest{Title: "First", Content: "a", IsPublished: true}, alice.ID)
	require.NoError(t, err)
	second, err := articles.Create(models.CreateArticleRequest{Title: "Second", Content: "b", IsPublished: true}, alice.ID)
	require.NoError(t, err)

	var vErr *models.ValidationError

	_, err = comments.Create(models.CreateCommentRequest{Content: "x", ArticleID: 999}, alice.ID)
	require.ErrorAs(t, err, &vErr)

	missingParent := uint(999)
	_, err = comments.Create(models.CreateCommentRequest{Content: "x", ArticleID: first.ID, ParentID: &missingParent}, alice.ID)
	require.ErrorAs(t, err, &vErr)

	parent, err := comments.Create(models.CreateCommentRequest{Content: "root", ArticleID: first.ID}, alice.ID)
	require.NoError(t, err)

	// A reply may not point at a parent on a different article.
	_, err = comments.Create(models.CreateCommentRequest{Content: "x", ArticleID: second.ID, ParentID: &parent.ID}, alice.ID)
	require.ErrorAs(t, err, &vErr)
}

func TestCommentServiceThread(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	comments := newCommentService(db)

	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")
	article, err := articles.Create(models.CreateArticleRequest{Title: "Post", Content: "body", IsPublished: true}, alice.ID)
	require.NoError(t, err)

	root, err := comments.Create(models.CreateCommentRequest{Content: "root", ArticleID: article.ID}, alice.ID)
	require.NoError(t, err)
	reply, err := comments.Create(models.CreateCommentRequest{Content: "reply", ArticleID: article.ID, ParentID: &root.ID}, bob.ID)
	require.NoError(t, err)
	pending, err := comments.Create(models.CreateCommentRequest{Content: "pending", ArticleID: article.ID}, bob.ID)
	require.NoError(t, err)

	for _, id := range []uint{root.ID, reply.ID} {
		_, err := comments.SetApproved(id, true)
		require.NoError(t, err)
	}

	thread, err := comments.GetThread(article.ID)
	require.NoError(t, err)

	require.Len(t, thread, 1, "unapproved comments stay out of the thread")
	assert.Equal(t, root.ID, thread[0].ID)
	require.Len(t, thread[0].Replies, 1)
	assert.Equal(t, reply.ID, thread[0].Replies[0].ID)
	_ = pending
}

func TestCommentServiceThreadOrphanedReply(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	comments := newCommentService(db)

	alice := createTestUser(t, users, "alice")
	article, err := articles.Create(models.CreateArticleRequest{Title: "Post", Content: "body", IsPublished: true}, alice.ID)
	require.NoError(t, err)

	root, err := comments.Create(models.CreateCommentRequest{Content: "root", ArticleID: article.ID}, alice.ID)
	require.NoError(t, err)
	reply, err := comments.Create(models.CreateCommentRequest{Content: "reply", ArticleID: article.ID, ParentID: &root.ID}, alice.ID)
	require.NoError(t, err)

	// Only the reply is approved; it should surface at the top level
	// instead of disappearing with its unapproved parent.
	_, err = comments.SetApproved(reply.ID, true)
	require.NoError(t, err)

	thread, err := comments.GetThread(article.ID)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, reply.ID, thread[0].ID)
}

func TestCommentServiceUpdateAndModeration(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	comments := newCommentService(db)

	alice := createTestUser(t, users, "alice")
	article, err := articles.Create(models.CreateArticleRequest{Title: "Post", Content: "body", IsPublished: true}, alice.ID)
	require.NoError(t, err)

	comment, err := comments.Create(models.CreateCommentRequest{Content: "v1", ArticleID: article.ID}, alice.ID)
	require.NoError(t, err)

	content := "v2"
	updated, err := comments.Update(comment.ID, models.UpdateCommentRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
	assert.False(t, updated.IsApproved, "editing does not approve")

	approved, err := comments.SetApproved(comment.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	rejected, err := comments.SetApproved(comment.ID, false)
	require.NoError(t, err)
	assert.False(t, rejected.IsApproved)

	missing, err := comments.SetApproved(999, true)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCommentServiceDeleteCascadesReplies(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	articles := newArticleService(db)
	comments := newCommentService(db)

	alice := createTestUser(t, users, "alice")
	article, err := articles.Create(models.CreateArticleRequest{Title: "Post", Content: "body", IsPublished: true}, alice.ID)
	require.NoError(t, err)

	root, err := comments.Create(models.CreateCommentRequest{Content: "root", ArticleID: article.ID}, alice.ID)
	require.NoError(t, err)
	_, err = comments.Create(models.CreateCommentRequest{Content: "reply", ArticleID: article.ID, ParentID: &root.ID}, alice.ID)
	require.NoError(t, err)

	deleted, err := comments.Delete(root.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}))
}
