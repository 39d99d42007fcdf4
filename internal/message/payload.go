// Package message はゲートウェイのワイヤ型（コマンド、ペイロード、エンベロープ）と
// その外部タグ付きJSON表現を定義する。
package message

import "github.com/hitoshi/rpelgate/internal/model"

// Payload はエンベロープのobjectフィールドに入る閉じた直和型。
// 実装はこのパッケージ内の型に限られる。
type Payload interface {
	// Name はワイヤ上のタグを返す。エンベロープのnameフィールドにも使われる。
	Name() string
	value() any
}

// Null は失敗時や値を持たない応答のペイロード。
type Null struct{}

// ID は挿入されたID、または更新・削除の影響行数を運ぶペイロード。
type ID struct{ Value int64 }

// 単一レコードのペイロード。
type (
	Certificate struct{ Item model.Certificate }
	Company     struct{ Item model.Company }
	Contact     struct{ Item model.Contact }
	Department  struct{ Item model.Department }
	Education   struct{ Item model.Education }
	Kind        struct{ Item model.Kind }
	Post        struct{ Item model.Post }
	Practice    struct{ Item model.Practice }
	Rank        struct{ Item model.Rank }
	Scope       struct{ Item model.Scope }
	Siren       struct{ Item model.Siren }
	SirenType   struct{ Item model.SirenType }
	User        struct{ Item model.User }
)

// 一覧と射影のペイロード。
type (
	CertificateList struct{ Items []model.CertificateList }
	CompanyList     struct{ Items []model.CompanyList }
	ContactList     struct{ Items []model.ContactList }
	DepartmentList  struct{ Items []model.DepartmentList }
	EducationList   struct{ Items []model.EducationList }
	EducationShort  struct{ Items []model.EducationShort }
	KindList        struct{ Items []model.KindList }
	PostList        struct{ Items []model.PostList }
	PracticeList    struct{ Items []model.PracticeList }
	PracticeShort   struct{ Items []model.PracticeShort }
	RankList        struct{ Items []model.RankList }
	ScopeList       struct{ Items []model.ScopeList }
	SelectItem      struct{ Items []model.SelectItem }
	SirenList       struct{ Items []model.SirenList }
	SirenTypeList   struct{ Items []model.SirenTypeList }
	UserList        struct{ Items []model.UserList }
)

func (Null) Name() string { return "Null" }
func (ID) Name() string   { return "Id" }

func (Certificate) Name() string { return string(model.KindCertificate) }
func (Company) Name() string     { return string(model.KindCompany) }
func (Contact) Name() string     { return string(model.KindContact) }
func (Department) Name() string  { return string(model.KindDepartment) }
func (Education) Name() string   { return string(model.KindEducation) }
func (Kind) Name() string        { return string(model.KindKind) }
func (Post) Name() string        { return string(model.KindPost) }
func (Practice) Name() string    { return string(model.KindPractice) }
func (Rank) Name() string        { return string(model.KindRank) }
func (Scope) Name() string       { return string(model.KindScope) }
func (Siren) Name() string       { return string(model.KindSiren) }
func (SirenType) Name() string   { return string(model.KindSirenType) }
func (User) Name() string        { return string(model.KindUser) }

func (CertificateList) Name() string { return string(model.ListCertificate) }
func (CompanyList) Name() string     { return string(model.ListCompany) }
func (ContactList) Name() string     { return string(model.ListContact) }
func (DepartmentList) Name() string  { return string(model.ListDepartment) }
func (EducationList) Name() string   { return string(model.ListEducation) }
func (EducationShort) Name() string  { return "EducationShort" }
func (KindList) Name() string        { return string(model.ListKind) }
func (PostList) Name() string        { return string(model.ListPost) }
func (PracticeList) Name() string    { return string(model.ListPractice) }
func (PracticeShort) Name() string   { return "PracticeShort" }
func (RankList) Name() string        { return string(model.ListRank) }
func (ScopeList) Name() string       { return string(model.ListScope) }
func (SelectItem) Name() string      { return "SelectItem" }
func (SirenList) Name() string       { return string(model.ListSiren) }
func (SirenTypeList) Name() string   { return string(model.ListSirenType) }
func (UserList) Name() string        { return string(model.ListUser) }

func (Null) value() any          { return nil }
func (p ID) value() any          { return p.Value }
func (p Certificate) value() any { return p.Item }
func (p Company) value() any     { return p.Item }
func (p Contact) value() any     { return p.Item }
func (p Department) value() any  { return p.Item }
func (p Education) value() any   { return p.Item }
func (p Kind) value() any        { return p.Item }
func (p Post) value() any        { return p.Item }
func (p Practice) value() any    { return p.Item }
func (p Rank) value() any        { return p.Item }
func (p Scope) value() any       { return p.Item }
func (p Siren) value() any       { return p.Item }
func (p SirenType) value() any   { return p.Item }
func (p User) value() any        { return p.Item }

func (p CertificateList) value() any { return nonNil(p.Items) }
func (p CompanyList) value() any     { return nonNil(p.Items) }
func (p ContactList) value() any     { return nonNil(p.Items) }
func (p DepartmentList) value() any  { return nonNil(p.Items) }
func (p EducationList) value() any   { return nonNil(p.Items) }
func (p EducationShort) value() any  { return nonNil(p.Items) }
func (p KindList) value() any        { return nonNil(p.Items) }
func (p PostList) value() any        { return nonNil(p.Items) }
func (p PracticeList) value() any    { return nonNil(p.Items) }
func (p PracticeShort) value() any   { return nonNil(p.Items) }
func (p RankList) value() any        { return nonNil(p.Items) }
func (p ScopeList) value() any       { return nonNil(p.Items) }
func (p SelectItem) value() any      { return nonNil(p.Items) }
func (p SirenList) value() any       { return nonNil(p.Items) }
func (p SirenTypeList) value() any   { return nonNil(p.Items) }
func (p UserList) value() any        { return nonNil(p.Items) }

// nonNil は空の一覧をnullではなく[]としてエンコードさせる。
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
