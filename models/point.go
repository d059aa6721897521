package models

import "time"

// 积分变动类型
const (
	PointsTypeOrder   = "order"   // 消费返积分
	PointsTypeCheckin = "checkin" // 签到奖励
	PointsTypeReview  = "review"  // 评价奖励
	PointsTypeAdjust  = "adjust"  // 后台调整
)

// PointsRecord 积分流水，只追加不修改
type PointsRecord struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"userId"`
	Points      int64     `gorm:"column:points;not null" json:"points"`   // 变动数额（正负）
	Balance     int64     `gorm:"column:balance;not null" json:"balance"` // 变动后余额
	Type        string    `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	RelatedID   string    `gorm:"column:related_id;size:64" json:"relatedId"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (PointsRecord) TableName() string {
	return "points_records"
}

// CheckinRecord 每用户每自然日（UTC）一条
type CheckinRecord struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID         uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_user_date,priority:1" json:"userId"`
	CheckinDate    string    `gorm:"column:checkin_date;type:varchar(10);not null;uniqueIndex:idx_user_date,priority:2" json:"checkinDate"`
	Points         int64     `gorm:"column:points;not null" json:"points"`
	ContinuousDays int       `gorm:"column:continuous_days;not null" json:"continuousDays"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (CheckinRecord) TableName() string {
	return "checkin_records"
}
