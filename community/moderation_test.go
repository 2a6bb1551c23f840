package community

import (
	"testing"

	"github.com/Lina4Life/passionart-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_Approve(t *testing.T) {
	svc, db, notifier := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	mod := seedUser(t, db, "mara", models.RoleModerator)
	post := seedPost(t, db, author.ID, models.StatusPendingVerification)

	updated, decision, err := svc.Decide(mod.ID, mod.Role, post.ID, models.ActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.Equal(t, models.ActionApprove, decision.Action)
	assert.Equal(t, mod.ID, decision.ModeratorID)
	assert.Equal(t, post.ID, decision.PostID)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, models.StatusApproved, stored.Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, author.ID, notifier.events[0].UserID)
	assert.True(t, notifier.events[0].Approved)
}

func TestDecide_RejectRequiresReason(t *testing.T) {
	svc, db, notifier := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	mod := seedUser(t, db, "mara", models.RoleModerator)
	post := seedPost(t, db, author.ID, models.StatusPendingVerification)

	_, _, err := svc.Decide(mod.ID, mod.Role, post.ID, models.ActionReject, "  ")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, models.StatusPendingVerification, stored.Status, "failed reject must not change status")

	updated, decision, err := svc.Decide(mod.ID, mod.Role, post.ID, models.ActionReject, "low quality")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
	assert.Equal(t, models.ActionReject, decision.Action)
	assert.Equal(t, "low quality", decision.Reason)

	require.Len(t, notifier.events, 1)
	assert.False(t, notifier.events[0].Approved)
	assert.Equal(t, "low quality", notifier.events[0].Reason)
}

func TestDecide_AlreadyDecided(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	mod := seedUser(t, db, "mara", models.RoleModerator)
	other := seedUser(t, db, "nilo", models.RoleModerator)
	post := seedPost(t, db, author.ID, models.StatusPendingVerification)

	_, _, err := svc.Decide(mod.ID, mod.Role, post.ID, models.ActionApprove, "")
	require.NoError(t, err)

	// second moderator loses, status stays approved
	_, _, err = svc.Decide(other.ID, other.Role, post.ID, models.ActionReject, "changed my mind")
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, models.StatusApproved, stored.Status)

	var decisions int64
	require.NoError(t, db.Model(&models.ModerationDecision{}).Where("post_id = ?", post.ID).Count(&decisions).Error)
	assert.EqualValues(t, 1, decisions, "at most one decision per post")
}

func TestDecide_PendingPaymentIsUndecidable(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	mod := seedUser(t, db, "mara", models.RoleModerator)
	post := seedPost(t, db, author.ID, models.StatusPendingPayment)

	_, _, err := svc.Decide(mod.ID, mod.Role, post.ID, models.ActionApprove, "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
}

func TestDecide_Errors(t *testing.T) {
	svc, db, _ := newTestService(t, nil)
	author := seedUser(t, db, "ines", models.RoleMember)
	mod := seedUser(t, db, "mara", models.RoleModerator)
	post := seedPost(t, db, author.ID, models.StatusPendingVerification)

	_, _, err := svc.Decide(mod.ID, mod.Role, 9999, models.ActionApprove, "")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))

	_, _, err = svc.Decide(author.ID, author.Role, post.ID, models.ActionApprove, "")
	require.Error(t, err)
	assert.Equal(t, KindAuthorization, KindOf(err))

	_, _, err = svc.Decide(mod.ID, mod.Role, post.ID, models.DecisionAction("escalate"), "")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
