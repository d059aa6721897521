package types

import "github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

type ListPointsReq struct {
	PageReq
	Type string `form:"type" binding:"omitempty,oneof=income expense"` // income 仅收入，expense 仅支出
}

type PointsResp struct {
	Balance    int64                  `json:"balance"`
	Records    []*models.PointsRecord `json:"records"`
	Pagination Pagination             `json:"pagination"`
}

type CheckinResp struct {
	Points         int64 `json:"points"`
	ContinuousDays int   `json:"continuousDays"`
	Balance        int64 `json:"balance"`
}

type CheckinStatusResp struct {
	CheckedIn      bool  `json:"checkedIn"`
	ContinuousDays int   `json:"continuousDays"`
	TodayPoints    int64 `json:"todayPoints"` // 今日已得积分，未签到为 0
	NextPoints     int64 `json:"nextPoints"`  // 下一次签到可得积分
	Balance        int64 `json:"balance"`
}
