// Package model はドメインモデルを定義する。
package model

// User はゲートウェイの利用ユーザーを表す。
// Keyはログイン時に照合される共有シークレットで、平文のまま保持される。
// Roleは権限ビットマスク。
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
	Role int64  `json:"role"`
}

// UserList はユーザー一覧の1行を表す。シークレットは含まない。
type UserList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role int64  `json:"role"`
}
