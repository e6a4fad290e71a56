package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicate 并发 toggle 时插入撞上联合主键
var ErrDuplicate = errors.New("duplicate key")

const mysqlDuplicateEntry = 1062

// toggleRow 删除匹配 cond 的行，删到则返回 false；否则插入 row 并返回 true。
// 正确性只依赖联合主键，不加应用层锁。
func toggleRow[T any](ctx context.Context, db *gorm.DB, row *T, cond map[string]any) (bool, error) {
	result := db.WithContext(ctx).Where(cond).Delete(new(T))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		if IsDuplicateKey(err) {
			return false, ErrDuplicate
		}
		return false, err
	}
	return true, nil
}

// IsDuplicateKey 兼容开启 TranslateError 与直接返回驱动错误两种情况
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
