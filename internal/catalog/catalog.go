// Package catalog はエンティティ種別タグから永続化層の呼び出しへの振り分けを提供する。
//
// 文字列による振り分けはこのパッケージの入口（種別タグ・一覧名の解析）に限られ、
// 以降は型付きのリポジトリを呼び出す。各呼び出しは独立しており、状態を持たない。
package catalog

import (
	"context"

	"github.com/hitoshi/rpelgate/internal/message"
	"github.com/hitoshi/rpelgate/internal/model"
	"github.com/hitoshi/rpelgate/internal/repository"
	"github.com/hitoshi/rpelgate/internal/security"
)

// sirenTypeAlias は削除時にのみ受け付けるSirenTypeの旧タグ。
const sirenTypeAlias = "Siren_type"

// Stores はカタログが使用するリポジトリの集合。
type Stores struct {
	Certificate repository.CertificateRepository
	Company     repository.CompanyRepository
	Contact     repository.ContactRepository
	Department  repository.DepartmentRepository
	Education   repository.EducationRepository
	Kind        repository.KindRepository
	Post        repository.PostRepository
	Practice    repository.PracticeRepository
	Rank        repository.RankRepository
	Scope       repository.ScopeRepository
	Siren       repository.SirenRepository
	SirenType   repository.SirenTypeRepository
	User        repository.UserRepository

	Select        repository.SelectRepository
	EducationNear repository.NearRepository[model.EducationShort]
	PracticeNear  repository.NearRepository[model.PracticeShort]
}

// Catalog はエンティティ種別ごとのCRUD振り分けを行う。
type Catalog struct {
	stores    Stores
	sanitizer security.TextSanitizer
}

// New はCatalogを生成する。sanitizerがnilの場合、文字列フィールドはそのまま保存される。
func New(stores Stores, sanitizer security.TextSanitizer) *Catalog {
	return &Catalog{stores: stores, sanitizer: sanitizer}
}

// clean はサニタイザを適用する。
func (c *Catalog) clean(s string) string {
	if c.sanitizer == nil {
		return s
	}
	return c.sanitizer.Clean(s)
}

// FetchItem は種別タグとIDで1件取得する。
func (c *Catalog) FetchItem(ctx context.Context, kind string, id int64) (message.Payload, error) {
	k, ok := model.ParseEntityKind(kind)
	if !ok {
		return nil, model.NewBadRequestError("bad item object: %s %d", kind, id)
	}

	switch k {
	case model.KindCertificate:
		return getItem(ctx, c.stores.Certificate, k, id, func(v model.Certificate) message.Payload { return message.Certificate{Item: v} })
	case model.KindCompany:
		return getItem(ctx, c.stores.Company, k, id, func(v model.Company) message.Payload { return message.Company{Item: v} })
	case model.KindContact:
		return getItem(ctx, c.stores.Contact, k, id, func(v model.Contact) message.Payload { return message.Contact{Item: v} })
	case model.KindDepartment:
		return getItem(ctx, c.stores.Department, k, id, func(v model.Department) message.Payload { return message.Department{Item: v} })
	case model.KindEducation:
		return getItem(ctx, c.stores.Education, k, id, func(v model.Education) message.Payload { return message.Education{Item: v} })
	case model.KindKind:
		return getItem(ctx, c.stores.Kind, k, id, func(v model.Kind) message.Payload { return message.Kind{Item: v} })
	case model.KindPost:
		return getItem(ctx, c.stores.Post, k, id, func(v model.Post) message.Payload { return message.Post{Item: v} })
	case model.KindPractice:
		return getItem(ctx, c.stores.Practice, k, id, func(v model.Practice) message.Payload { return message.Practice{Item: v} })
	case model.KindRank:
		return getItem(ctx, c.stores.Rank, k, id, func(v model.Rank) message.Payload { return message.Rank{Item: v} })
	case model.KindScope:
		return getItem(ctx, c.stores.Scope, k, id, func(v model.Scope) message.Payload { return message.Scope{Item: v} })
	case model.KindSiren:
		return getItem(ctx, c.stores.Siren, k, id, func(v model.Siren) message.Payload { return message.Siren{Item: v} })
	case model.KindSirenType:
		return getItem(ctx, c.stores.SirenType, k, id, func(v model.SirenType) message.Payload { return message.SirenType{Item: v} })
	case model.KindUser:
		// 汎用の取得経路ではシークレットを返さない
		return getItem[model.User, model.UserList](ctx, c.stores.User, k, id, func(v model.User) message.Payload {
			v.Key = ""
			return message.User{Item: v}
		})
	}
	return nil, model.NewBadRequestError("bad item object: %s %d", kind, id)
}

// FetchList は一覧名に対応する一覧・射影を取得する。
func (c *Catalog) FetchList(ctx context.Context, name string) (message.Payload, error) {
	n, ok := model.ParseListName(name)
	if !ok {
		return nil, model.NewBadRequestError("bad list object: %s", name)
	}

	switch n {
	case model.ListCertificate:
		return list(ctx, c.stores.Certificate, func(v []model.CertificateList) message.Payload { return message.CertificateList{Items: v} })
	case model.ListCompany:
		return list(ctx, c.stores.Company, func(v []model.CompanyList) message.Payload { return message.CompanyList{Items: v} })
	case model.ListContact:
		return list(ctx, c.stores.Contact, func(v []model.ContactList) message.Payload { return message.ContactList{Items: v} })
	case model.ListDepartment:
		return list(ctx, c.stores.Department, func(v []model.DepartmentList) message.Payload { return message.DepartmentList{Items: v} })
	case model.ListEducation:
		return list(ctx, c.stores.Education, func(v []model.EducationList) message.Payload { return message.EducationList{Items: v} })
	case model.ListKind:
		return list(ctx, c.stores.Kind, func(v []model.KindList) message.Payload { return message.KindList{Items: v} })
	case model.ListPost:
		return list(ctx, c.stores.Post, func(v []model.PostList) message.Payload { return message.PostList{Items: v} })
	case model.ListPractice:
		return list(ctx, c.stores.Practice, func(v []model.PracticeList) message.Payload { return message.PracticeList{Items: v} })
	case model.ListRank:
		return list(ctx, c.stores.Rank, func(v []model.RankList) message.Payload { return message.RankList{Items: v} })
	case model.ListScope:
		return list(ctx, c.stores.Scope, func(v []model.ScopeList) message.Payload { return message.ScopeList{Items: v} })
	case model.ListSiren:
		return list(ctx, c.stores.Siren, func(v []model.SirenList) message.Payload { return message.SirenList{Items: v} })
	case model.ListSirenType:
		return list(ctx, c.stores.SirenType, func(v []model.SirenTypeList) message.Payload { return message.SirenTypeList{Items: v} })
	case model.ListUser:
		return list[model.User, model.UserList](ctx, c.stores.User, func(v []model.UserList) message.Payload { return message.UserList{Items: v} })

	case model.ListEducationNear:
		items, err := c.stores.EducationNear.ListNear(ctx)
		if err != nil {
			return nil, model.NewPersistenceError(err)
		}
		return message.EducationShort{Items: items}, nil
	case model.ListPracticeNear:
		items, err := c.stores.PracticeNear.ListNear(ctx)
		if err != nil {
			return nil, model.NewPersistenceError(err)
		}
		return message.PracticeShort{Items: items}, nil
	}

	kind, ok := selectKinds[n]
	if !ok {
		return nil, model.NewBadRequestError("bad list object: %s", name)
	}
	items, err := c.stores.Select.ListSelect(ctx, kind)
	if err != nil {
		return nil, model.NewPersistenceError(err)
	}
	return message.SelectItem{Items: items}, nil
}

// selectKinds は選択肢の一覧名と射影対象の対応。
var selectKinds = map[model.ListName]model.SelectKind{
	model.ListCompanySelect:    model.SelectCompany,
	model.ListContactSelect:    model.SelectContact,
	model.ListDepartmentSelect: model.SelectDepartment,
	model.ListKindSelect:       model.SelectPracticeKind,
	model.ListPostSelect:       model.SelectPost,
	model.ListPostGoSelect:     model.SelectPostGo,
	model.ListRankSelect:       model.SelectRank,
	model.ListScopeSelect:      model.SelectScope,
	model.ListSirenTypeSelect:  model.SelectSirenType,
}

// Insert は単一レコードのペイロードを挿入し、採番されたIDを返す。
func (c *Catalog) Insert(ctx context.Context, p message.Payload) (int64, error) {
	switch v := p.(type) {
	case message.Certificate:
		return insert(ctx, c.stores.Certificate, c.cleanCertificate(v.Item))
	case message.Company:
		return insert(ctx, c.stores.Company, c.cleanCompany(v.Item))
	case message.Contact:
		return insert(ctx, c.stores.Contact, c.cleanContact(v.Item))
	case message.Department:
		return insert(ctx, c.stores.Department, c.cleanDepartment(v.Item))
	case message.Education:
		return insert(ctx, c.stores.Education, c.cleanEducation(v.Item))
	case message.Kind:
		return insert(ctx, c.stores.Kind, c.cleanKind(v.Item))
	case message.Post:
		return insert(ctx, c.stores.Post, c.cleanPost(v.Item))
	case message.Practice:
		return insert(ctx, c.stores.Practice, c.cleanPractice(v.Item))
	case message.Rank:
		return insert(ctx, c.stores.Rank, c.cleanRank(v.Item))
	case message.Scope:
		return insert(ctx, c.stores.Scope, c.cleanScope(v.Item))
	case message.Siren:
		return insert(ctx, c.stores.Siren, c.cleanSiren(v.Item))
	case message.SirenType:
		return insert(ctx, c.stores.SirenType, c.cleanSirenType(v.Item))
	case message.User:
		return c.InsertUser(ctx, v.Item)
	}
	return 0, model.NewBadRequestError("bad item object")
}

// Update は単一レコードのペイロードで更新し、影響行数を返す。
func (c *Catalog) Update(ctx context.Context, p message.Payload) (int64, error) {
	switch v := p.(type) {
	case message.Certificate:
		return update(ctx, c.stores.Certificate, c.cleanCertificate(v.Item))
	case message.Company:
		return update(ctx, c.stores.Company, c.cleanCompany(v.Item))
	case message.Contact:
		return update(ctx, c.stores.Contact, c.cleanContact(v.Item))
	case message.Department:
		return update(ctx, c.stores.Department, c.cleanDepartment(v.Item))
	case message.Education:
		return update(ctx, c.stores.Education, c.cleanEducation(v.Item))
	case message.Kind:
		return update(ctx, c.stores.Kind, c.cleanKind(v.Item))
	case message.Post:
		return update(ctx, c.stores.Post, c.cleanPost(v.Item))
	case message.Practice:
		return update(ctx, c.stores.Practice, c.cleanPractice(v.Item))
	case message.Rank:
		return update(ctx, c.stores.Rank, c.cleanRank(v.Item))
	case message.Scope:
		return update(ctx, c.stores.Scope, c.cleanScope(v.Item))
	case message.Siren:
		return update(ctx, c.stores.Siren, c.cleanSiren(v.Item))
	case message.SirenType:
		return update(ctx, c.stores.SirenType, c.cleanSirenType(v.Item))
	case message.User:
		return c.UpdateUser(ctx, v.Item)
	}
	return 0, model.NewBadRequestError("bad item object")
}

// Delete は種別タグとIDで1件削除し、影響行数を返す。
func (c *Catalog) Delete(ctx context.Context, kind string, id int64) (int64, error) {
	tag := kind
	if tag == sirenTypeAlias {
		tag = string(model.KindSirenType)
	}
	k, ok := model.ParseEntityKind(tag)
	if !ok {
		return 0, model.NewBadRequestError("bad path %q", kind)
	}

	switch k {
	case model.KindCertificate:
		return remove(ctx, c.stores.Certificate, id)
	case model.KindCompany:
		return remove(ctx, c.stores.Company, id)
	case model.KindContact:
		return remove(ctx, c.stores.Contact, id)
	case model.KindDepartment:
		return remove(ctx, c.stores.Department, id)
	case model.KindEducation:
		return remove(ctx, c.stores.Education, id)
	case model.KindKind:
		return remove(ctx, c.stores.Kind, id)
	case model.KindPost:
		return remove(ctx, c.stores.Post, id)
	case model.KindPractice:
		return remove(ctx, c.stores.Practice, id)
	case model.KindRank:
		return remove(ctx, c.stores.Rank, id)
	case model.KindScope:
		return remove(ctx, c.stores.Scope, id)
	case model.KindSiren:
		return remove(ctx, c.stores.Siren, id)
	case model.KindSirenType:
		return remove(ctx, c.stores.SirenType, id)
	case model.KindUser:
		return c.DeleteUser(ctx, id)
	}
	return 0, model.NewBadRequestError("bad path %q", kind)
}

// GetUser はユーザーを1件取得する。
func (c *Catalog) GetUser(ctx context.Context, id int64) (message.Payload, error) {
	return getItem[model.User, model.UserList](ctx, c.stores.User, model.KindUser, id, func(v model.User) message.Payload { return message.User{Item: v} })
}

// ListUsers はユーザー一覧を取得する。
func (c *Catalog) ListUsers(ctx context.Context) (message.Payload, error) {
	return list[model.User, model.UserList](ctx, c.stores.User, func(v []model.UserList) message.Payload { return message.UserList{Items: v} })
}

// InsertUser はユーザーを作成し、採番されたIDを返す。
func (c *Catalog) InsertUser(ctx context.Context, u model.User) (int64, error) {
	if err := c.checkUserName(u.Name); err != nil {
		return 0, err
	}
	return insert[model.User, model.UserList](ctx, c.stores.User, u)
}

// UpdateUser はユーザーを更新し、影響行数を返す。
func (c *Catalog) UpdateUser(ctx context.Context, u model.User) (int64, error) {
	if err := c.checkUserName(u.Name); err != nil {
		return 0, err
	}
	return update[model.User, model.UserList](ctx, c.stores.User, u)
}

// DeleteUser はユーザーを削除し、影響行数を返す。
func (c *Catalog) DeleteUser(ctx context.Context, id int64) (int64, error) {
	return remove[model.User, model.UserList](ctx, c.stores.User, id)
}

// checkUserName はサニタイズで変化する名前を拒否する。
// ログインは名前を完全一致で照合するため、保存時に書き換えることはできない。
func (c *Catalog) checkUserName(name string) error {
	if c.clean(name) != name {
		return model.NewBadRequestError("bad user name %q", name)
	}
	return nil
}

func getItem[T, L any](ctx context.Context, store repository.EntityStore[T, L], kind model.EntityKind, id int64, wrap func(T) message.Payload) (message.Payload, error) {
	rec, err := store.Get(ctx, id)
	if err != nil {
		return nil, model.NewPersistenceError(err)
	}
	if rec == nil {
		return nil, model.NewNotFoundError(kind, id)
	}
	return wrap(*rec), nil
}

func list[T, L any](ctx context.Context, store repository.EntityStore[T, L], wrap func([]L) message.Payload) (message.Payload, error) {
	items, err := store.List(ctx)
	if err != nil {
		return nil, model.NewPersistenceError(err)
	}
	return wrap(items), nil
}

func insert[T model.Identified, L any](ctx context.Context, store repository.EntityStore[T, L], rec T) (int64, error) {
	saved, err := store.Insert(ctx, rec)
	if err != nil {
		return 0, model.NewPersistenceError(err)
	}
	return saved.EntityID(), nil
}

func update[T, L any](ctx context.Context, store repository.EntityStore[T, L], rec T) (int64, error) {
	n, err := store.Update(ctx, rec)
	if err != nil {
		return 0, model.NewPersistenceError(err)
	}
	return n, nil
}

func remove[T, L any](ctx context.Context, store repository.EntityStore[T, L], id int64) (int64, error) {
	n, err := store.Delete(ctx, id)
	if err != nil {
		return 0, model.NewPersistenceError(err)
	}
	return n, nil
}
