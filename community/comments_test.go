package community

import (
	"testing"
	"time"

	"github.com/Lina4Life/passionart-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	commenter := seedUser(t, db, "alba", models.RoleMember)
	post := seedPost(t, db, author.ID, models.StatusApproved)

	comment, err := svc.AddComment(commenter.ID, post.ID, "  lovely palette  ")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, "lovely palette", comment.Body)
	assert.False(t, comment.CreatedAt.IsZero())

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, 1, stored.CommentCount)
}

func TestAddComment_Errors(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	commenter := seedUser(t, db, "alba", models.RoleMember)
	approved := seedPost(t, db, author.ID, models.StatusApproved)

	_, err := svc.AddComment(commenter.ID, approved.ID, "   ")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	for _, status := range []models.PostStatus{models.StatusPendingVerification, models.StatusRejected} {
		post := seedPost(t, db, author.ID, status)
		_, err := svc.AddComment(commenter.ID, post.ID, "hello")
		require.Error(t, err)
		assert.Equal(t, KindInvalidState, KindOf(err), "status %s", status)
	}

	_, err = svc.AddComment(commenter.ID, 9999, "hello")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestListComments(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	commenter := seedUser(t, db, "alba", models.RoleMember)
	post := seedPost(t, db, author.ID, models.StatusApproved)

	first, err := svc.AddComment(commenter.ID, post.ID, "first")
	require.NoError(t, err)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)
	second, err := svc.AddComment(author.ID, post.ID, "second")
	require.NoError(t, err)

	comments, err := svc.ListComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, "alba", comments[0].AuthorName)
	assert.Equal(t, second.ID, comments[1].ID)

	// threads are not listable before approval
	pending := seedPost(t, db, author.ID, models.StatusPendingVerification)
	_, err = svc.ListComments(pending.ID)
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))

	_, err = svc.ListComments(9999)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
