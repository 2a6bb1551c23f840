package community

import (
	"testing"

	"github.com/Lina4Life/passionart-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVote_AggregateSemantics(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	userA := seedUser(t, db, "alba", models.RoleMember)
	userB := seedUser(t, db, "bruno", models.RoleMember)
	post := seedPost(t, db, author.ID, models.StatusApproved)

	score, err := svc.Vote(userA.ID, post.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	score, err = svc.Vote(userB.ID, post.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	// direction flip adjusts the aggregate by 2 * new direction
	score, err = svc.Vote(userA.ID, post.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, -2, score)

	var votes int64
	require.NoError(t, db.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&votes).Error)
	assert.EqualValues(t, 2, votes, "one vote row per voter")
}

func TestVote_Idempotent(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	voter := seedUser(t, db, "alba", models.RoleMember)
	post := seedPost(t, db, author.ID, models.StatusApproved)

	score, err := svc.Vote(voter.ID, post.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	// repeating the same click does not double-count
	score, err = svc.Vote(voter.ID, post.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	var votes int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&votes).Error)
	assert.EqualValues(t, 1, votes)
}

func TestVote_SelfVoteRejected(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	post := seedPost(t, db, author.ID, models.StatusApproved)

	_, err := svc.Vote(author.ID, post.ID, +1)
	require.Error(t, err)
	assert.Equal(t, KindSelfVote, KindOf(err))

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Zero(t, stored.VoteScore, "self-vote must never change the aggregate")
}

func TestVote_RequiresApprovedPost(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	voter := seedUser(t, db, "alba", models.RoleMember)

	for _, status := range []models.PostStatus{models.StatusPendingPayment, models.StatusPendingVerification, models.StatusRejected} {
		post := seedPost(t, db, author.ID, status)
		_, err := svc.Vote(voter.ID, post.ID, +1)
		require.Error(t, err)
		assert.Equal(t, KindInvalidState, KindOf(err), "status %s", status)
	}
}

func TestVote_InputErrors(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	voter := seedUser(t, db, "alba", models.RoleMember)
	post := seedPost(t, db, author.ID, models.StatusApproved)

	_, err := svc.Vote(voter.ID, post.ID, 0)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.Vote(voter.ID, post.ID, 2)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.Vote(voter.ID, 9999, +1)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
