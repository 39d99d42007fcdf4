package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/rpelgate/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	*PostgresTable[model.User, model.UserList]
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{
		PostgresTable: newPostgresTable(db, tableDef[model.User, model.UserList]{
			table:     "users",
			getSQL:    `SELECT id, name, key, role FROM users WHERE id = $1`,
			listSQL:   `SELECT id, name, role FROM users ORDER BY name`,
			insertSQL: `INSERT INTO users (name, key, role) VALUES ($1, $2, $3) RETURNING id`,
			updateSQL: `UPDATE users SET name = $2, key = $3, role = $4 WHERE id = $1`,
			scanItem: func(s rowScanner) (model.User, error) {
				var v model.User
				err := s.Scan(&v.ID, &v.Name, &v.Key, &v.Role)
				return v, err
			},
			scanList: func(s rowScanner) (model.UserList, error) {
				var v model.UserList
				err := s.Scan(&v.ID, &v.Name, &v.Role)
				return v, err
			},
			args:  func(v model.User) []any { return []any{v.Name, v.Key, v.Role} },
			id:    func(v model.User) int64 { return v.ID },
			setID: func(v *model.User, id int64) { v.ID = id },
		}),
	}
}

// ListCredentials はセッション構築用に全ユーザーをシークレット付きで返す。
func (r *PostgresUserRepo) ListCredentials(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, key, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list user credentials: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Key, &u.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user credentials: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user credentials: %w", err)
	}
	return users, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
