package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// 存储过程名称，与 migrations 中的函数保持一致
const (
	ProcFollowUser   = "follow_user"
	ProcUnfollowUser = "unfollow_user"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var procNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ProcedureCaller 调用数据库端的原子存储过程
type ProcedureCaller interface {
	Call(ctx context.Context, name string, args ...interface{}) error
}

// Procedures 基于 sqlx 的实现，与 gorm 共用同一个连接池
type Procedures struct {
	db *sqlx.DB
}

// NewProcedures 用 gorm 底层的 *sql.DB 创建存储过程调用器
func NewProcedures(sqlDB *sql.DB) *Procedures {
	return &Procedures{db: sqlx.NewDb(sqlDB, "pgx")}
}

// Call 执行 SELECT name($1, $2, ...)
func (p *Procedures) Call(ctx context.Context, name string, args ...interface{}) error {
	if !procNamePattern.MatchString(name) {
		return fmt.Errorf("invalid procedure name %q", name)
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("SELECT %s(%s)", name, strings.Join(placeholders, ", "))

	_, err := p.db.ExecContext(ctx, query, args...)
	return err
}

// IsUniqueViolation 判断是否唯一约束冲突
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKeyViolation 判断是否外键约束冲突（引用的动态或用户不存在）
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// ErrorMessage 返回数据库报错的原始消息（存储过程 RAISE EXCEPTION 的内容）
func ErrorMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}
