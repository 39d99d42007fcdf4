// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/rpelgate/internal/model"
)

// EntityStore は1種類のエンティティに対するCRUDの永続化インターフェース。
// Tは単一レコード、Lは一覧の1行の型。
type EntityStore[T any, L any] interface {
	// Get は指定IDのレコードを取得する。見つからない場合はnilを返す。
	Get(ctx context.Context, id int64) (*T, error)

	// List は一覧を返す。
	List(ctx context.Context) ([]L, error)

	// Insert はレコードを作成し、採番されたIDを設定したレコードを返す。
	Insert(ctx context.Context, rec T) (T, error)

	// Update はレコードを更新し、影響行数を返す。
	Update(ctx context.Context, rec T) (int64, error)

	// Delete は指定IDのレコードを削除し、影響行数を返す。
	Delete(ctx context.Context, id int64) (int64, error)
}

// エンティティ種別ごとの永続化インターフェース。
type (
	CertificateRepository = EntityStore[model.Certificate, model.CertificateList]
	CompanyRepository     = EntityStore[model.Company, model.CompanyList]
	ContactRepository     = EntityStore[model.Contact, model.ContactList]
	DepartmentRepository  = EntityStore[model.Department, model.DepartmentList]
	EducationRepository   = EntityStore[model.Education, model.EducationList]
	KindRepository        = EntityStore[model.Kind, model.KindList]
	PostRepository        = EntityStore[model.Post, model.PostList]
	PracticeRepository    = EntityStore[model.Practice, model.PracticeList]
	RankRepository        = EntityStore[model.Rank, model.RankList]
	ScopeRepository       = EntityStore[model.Scope, model.ScopeList]
	SirenRepository       = EntityStore[model.Siren, model.SirenList]
	SirenTypeRepository   = EntityStore[model.SirenType, model.SirenTypeList]
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	EntityStore[model.User, model.UserList]

	// ListCredentials はセッション構築用に全ユーザーをシークレット付きで返す。
	ListCredentials(ctx context.Context) ([]model.User, error)
}

// SelectRepository は選択肢用の(ID, 名前)射影を提供する。
type SelectRepository interface {
	// ListSelect は指定テーブルの選択肢を名前順に返す。
	ListSelect(ctx context.Context, kind model.SelectKind) ([]model.SelectItem, error)
}

// NearRepository は日付が近いレコードの射影を提供する。
type NearRepository[S any] interface {
	// ListNear は今日から NearWindowDays 日以内のレコードを日付順に返す。
	ListNear(ctx context.Context) ([]S, error)
}

// NearWindowDays はNear射影が対象とする日数。
const NearWindowDays = 30
