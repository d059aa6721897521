package service

import (
	"testing"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckinPoints(t *testing.T) {
	cases := map[int]int64{0: 10, 1: 10, 2: 12, 3: 14, 10: 28, 11: 30, 12: 30, 100: 30}
	for streak, want := range cases {
		assert.Equal(t, want, CheckinPoints(streak), "streak %d", streak)
	}
}

func TestCheckinStreak(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "13700000001", "")

	status, err := env.points.CheckinStatus(env.ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, status.CheckedIn)
	assert.Equal(t, int64(10), status.NextPoints)

	resp, err := env.points.Checkin(env.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, &types.CheckinResp{Points: 10, ContinuousDays: 1, Balance: 10}, resp)

	_, err = env.points.Checkin(env.ctx, u.ID)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	status, err = env.points.CheckinStatus(env.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, &types.CheckinStatusResp{
		CheckedIn:      true,
		ContinuousDays: 1,
		TodayPoints:    10,
		NextPoints:     12,
		Balance:        10,
	}, status)

	env.clock.Add(24 * time.Hour)
	status, err = env.points.CheckinStatus(env.ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, status.CheckedIn)
	assert.Equal(t, 1, status.ContinuousDays)
	assert.Equal(t, int64(12), status.NextPoints)

	resp, err = env.points.Checkin(env.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Points)
	assert.Equal(t, 2, resp.ContinuousDays)
	assert.Equal(t, int64(22), resp.Balance)

	// 断签一天后重新计数
	env.clock.Add(48 * time.Hour)
	resp, err = env.points.Checkin(env.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Points)
	assert.Equal(t, 1, resp.ContinuousDays)
	assert.Equal(t, int64(32), resp.Balance)

	var records []models.CheckinRecord
	require.NoError(t, env.db.Where("user_id = ?", u.ID).Order("id").Find(&records).Error)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"2026-03-02", "2026-03-03", "2026-03-05"},
		[]string{records[0].CheckinDate, records[1].CheckinDate, records[2].CheckinDate})

	assert.Equal(t, int64(32), env.reloadUser(t, u.ID).Points)
}

func TestAwardPoints(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "13700000002", "")

	balance, err := env.points.Award(env.ctx, u.ID, 50, models.PointsTypeAdjust, "补偿", "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	_, err = env.points.Award(env.ctx, u.ID, 50, models.PointsTypeAdjust, "补偿", "ticket-1")
	assert.ErrorIs(t, err, ErrDuplicatePoints)

	_, err = env.points.Award(env.ctx, u.ID, -80, models.PointsTypeAdjust, "扣减", "")
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	balance, err = env.points.Award(env.ctx, u.ID, -30, models.PointsTypeAdjust, "扣减", "")
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance)

	_, err = env.points.Award(env.ctx, u.ID, 0, models.PointsTypeAdjust, "", "")
	assert.Error(t, err)

	all, err := env.points.Records(env.ctx, u.ID, &types.ListPointsReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(20), all.Balance)
	assert.Len(t, all.Records, 2)
	assert.Equal(t, int64(2), all.Pagination.Total)

	income, err := env.points.Records(env.ctx, u.ID, &types.ListPointsReq{Type: "income"})
	require.NoError(t, err)
	require.Len(t, income.Records, 1)
	assert.Equal(t, int64(50), income.Records[0].Points)
	assert.Equal(t, int64(50), income.Records[0].Balance)

	expense, err := env.points.Records(env.ctx, u.ID, &types.ListPointsReq{Type: "expense"})
	require.NoError(t, err)
	require.Len(t, expense.Records, 1)
	assert.Equal(t, int64(-30), expense.Records[0].Points)
	assert.Equal(t, int64(20), expense.Records[0].Balance)
}
