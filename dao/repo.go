package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor 把事务放进 context，DAO 取连接时优先使用事务
type Transactor struct {
	Db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{Db: db}
}

// Transaction 已处于事务中时直接复用外层事务
func (t *Transactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Conn 返回当前 context 上的事务连接或普通连接
func (r Repo[T]) Conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.Db.WithContext(ctx)
}

func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Conn(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Conn(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, where string, args ...any) ([]*T, error) {
	items := make([]*T, 0)
	err := r.Conn(ctx).Where(where, args...).Order("id DESC").Find(&items).Error
	return items, err
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Conn(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Conn(ctx).Model(new(T)).Where(where, args...).Count(&count).Error
	return count, err
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Conn(ctx).Create(item).Error
}

// UpdateWhere 返回受影响行数，条件更新靠它判断是否抢占成功
func (r Repo[T]) UpdateWhere(ctx context.Context, data map[string]any, where string, args ...any) (int64, error) {
	result := r.Conn(ctx).Model(new(T)).Where(where, args...).Updates(data)
	return result.RowsAffected, result.Error
}

// Page 偏移分页，filter 只负责过滤条件，关联通过 preloads 加载
func (r Repo[T]) Page(ctx context.Context, page, limit int, filter func(*gorm.DB) *gorm.DB, preloads ...string) ([]*T, int64, error) {
	var total int64
	if err := r.Conn(ctx).Model(new(T)).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*T, 0, limit)
	if total == 0 {
		return items, 0, nil
	}
	query := r.Conn(ctx).Scopes(filter)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	err := query.Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&items).Error
	return items, total, err
}

// IsNotFound 统一判断记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
