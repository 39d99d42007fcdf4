package model

// EntityKind は単一レコード操作（取得・挿入・更新・削除）の対象となるエンティティ種別。
type EntityKind string

// エンティティ種別の一覧。ワイヤ上のタグと同じ文字列を値に持つ。
const (
	KindCertificate EntityKind = "Certificate"
	KindCompany     EntityKind = "Company"
	KindContact     EntityKind = "Contact"
	KindDepartment  EntityKind = "Department"
	KindEducation   EntityKind = "Education"
	KindKind        EntityKind = "Kind"
	KindPost        EntityKind = "Post"
	KindPractice    EntityKind = "Practice"
	KindRank        EntityKind = "Rank"
	KindScope       EntityKind = "Scope"
	KindSiren       EntityKind = "Siren"
	KindSirenType   EntityKind = "SirenType"
	KindUser        EntityKind = "User"
)

// EntityKinds は全エンティティ種別を定義順に返す。
func EntityKinds() []EntityKind {
	return []EntityKind{
		KindCertificate, KindCompany, KindContact, KindDepartment, KindEducation,
		KindKind, KindPost, KindPractice, KindRank, KindScope,
		KindSiren, KindSirenType, KindUser,
	}
}

// ParseEntityKind はワイヤ上のタグをEntityKindに変換する。
func ParseEntityKind(s string) (EntityKind, bool) {
	for _, k := range EntityKinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// ListName は一覧取得の対象を表す。
// 種別ごとの全件一覧のほか、選択肢用の射影（Select）と日付の近いレコードの射影（Near）を含む。
type ListName string

// 一覧名の一覧。
const (
	ListCertificate ListName = "CertificateList"
	ListCompany     ListName = "CompanyList"
	ListContact     ListName = "ContactList"
	ListDepartment  ListName = "DepartmentList"
	ListEducation   ListName = "EducationList"
	ListKind        ListName = "KindList"
	ListPost        ListName = "PostList"
	ListPractice    ListName = "PracticeList"
	ListRank        ListName = "RankList"
	ListScope       ListName = "ScopeList"
	ListSiren       ListName = "SirenList"
	ListSirenType   ListName = "SirenTypeList"
	ListUser        ListName = "UserList"

	ListCompanySelect    ListName = "CompanySelect"
	ListContactSelect    ListName = "ContactSelect"
	ListDepartmentSelect ListName = "DepartmentSelect"
	ListKindSelect       ListName = "KindSelect"
	ListPostSelect       ListName = "PostSelect"
	ListPostGoSelect     ListName = "PostGoSelect"
	ListRankSelect       ListName = "RankSelect"
	ListScopeSelect      ListName = "ScopeSelect"
	ListSirenTypeSelect  ListName = "SirenTypeSelect"

	ListEducationNear ListName = "EducationNear"
	ListPracticeNear  ListName = "PracticeNear"
)

var listNames = []ListName{
	ListCertificate, ListCompany, ListContact, ListDepartment, ListEducation,
	ListKind, ListPost, ListPractice, ListRank, ListScope,
	ListSiren, ListSirenType, ListUser,
	ListCompanySelect, ListContactSelect, ListDepartmentSelect, ListKindSelect,
	ListPostSelect, ListPostGoSelect, ListRankSelect, ListScopeSelect, ListSirenTypeSelect,
	ListEducationNear, ListPracticeNear,
}

// ListNames は全一覧名を返す。
func ListNames() []ListName {
	out := make([]ListName, len(listNames))
	copy(out, listNames)
	return out
}

// ParseListName はワイヤ上の一覧名をListNameに変換する。
func ParseListName(s string) (ListName, bool) {
	for _, n := range listNames {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// SelectKind は選択肢射影の対象テーブルを表す。
type SelectKind string

// 選択肢射影の一覧。
const (
	SelectCompany      SelectKind = "company"
	SelectContact      SelectKind = "contact"
	SelectDepartment   SelectKind = "department"
	SelectPracticeKind SelectKind = "kind"
	SelectPost         SelectKind = "post"
	SelectPostGo       SelectKind = "post_go"
	SelectRank         SelectKind = "rank"
	SelectScope        SelectKind = "scope"
	SelectSirenType    SelectKind = "siren_type"
)
