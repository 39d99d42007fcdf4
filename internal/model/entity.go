// Package model はドメインモデルを定義する。
package model

// Scope は事業所の業種区分を表す。
type Scope struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// ScopeList は業種区分一覧の1行を表す。
type ScopeList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// Kind は訓練の種別を表す。
type Kind struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Note      string `json:"note,omitempty"`
}

// KindList は訓練種別一覧の1行を表す。
type KindList struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Note      string `json:"note,omitempty"`
}

// Post は役職を表す。
// Goは民防（GO）関連の役職であることを示す。
type Post struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Go   bool   `json:"go"`
	Note string `json:"note,omitempty"`
}

// PostList は役職一覧の1行を表す。
type PostList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Go   bool   `json:"go"`
	Note string `json:"note,omitempty"`
}

// Rank は階級を表す。
type Rank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// RankList は階級一覧の1行を表す。
type RankList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// Department は部署を表す。
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// DepartmentList は部署一覧の1行を表す。
type DepartmentList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// SirenType はサイレンの型式を表す。Radiusは可聴半径（メートル）。
type SirenType struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Radius int64  `json:"radius"`
	Note   string `json:"note,omitempty"`
}

// SirenTypeList はサイレン型式一覧の1行を表す。
type SirenTypeList struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Radius int64  `json:"radius"`
	Note   string `json:"note,omitempty"`
}

// Company は事業所を表す。
type Company struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	ScopeID int64  `json:"scope_id,omitempty"`
	Note    string `json:"note,omitempty"`
}

// CompanyList は事業所一覧の1行を表す。業種名を結合して返す。
type CompanyList struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	ScopeName string `json:"scope_name,omitempty"`
}

// Contact は担当者を表す。
type Contact struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CompanyID    int64  `json:"company_id,omitempty"`
	DepartmentID int64  `json:"department_id,omitempty"`
	PostID       int64  `json:"post_id,omitempty"`
	PostGoID     int64  `json:"post_go_id,omitempty"`
	RankID       int64  `json:"rank_id,omitempty"`
	Birthday     Date   `json:"birthday"`
	Note         string `json:"note,omitempty"`
}

// ContactList は担当者一覧の1行を表す。
type ContactList struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name,omitempty"`
	PostName    string `json:"post_name,omitempty"`
}

// Certificate は担当者に発行された資格証明書を表す。
type Certificate struct {
	ID        int64  `json:"id"`
	Num       string `json:"num"`
	ContactID int64  `json:"contact_id,omitempty"`
	CompanyID int64  `json:"company_id,omitempty"`
	CertDate  Date   `json:"cert_date"`
	Note      string `json:"note,omitempty"`
}

// CertificateList は資格証明書一覧の1行を表す。
type CertificateList struct {
	ID          int64  `json:"id"`
	Num         string `json:"num"`
	ContactName string `json:"contact_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CertDate    Date   `json:"cert_date"`
}

// Education は担当者の教育受講記録を表す。
type Education struct {
	ID        int64  `json:"id"`
	ContactID int64  `json:"contact_id"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	PostID    int64  `json:"post_id,omitempty"`
	Note      string `json:"note,omitempty"`
}

// EducationList は教育受講記録一覧の1行を表す。
type EducationList struct {
	ID          int64  `json:"id"`
	ContactName string `json:"contact_name,omitempty"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	PostName    string `json:"post_name,omitempty"`
}

// EducationShort は開始日が近い教育受講記録の簡易表現。
type EducationShort struct {
	ID          int64  `json:"id"`
	ContactID   int64  `json:"contact_id"`
	ContactName string `json:"contact_name,omitempty"`
	StartDate   Date   `json:"start_date"`
}

// Practice は事業所で実施された訓練を表す。
type Practice struct {
	ID             int64  `json:"id"`
	CompanyID      int64  `json:"company_id"`
	KindID         int64  `json:"kind_id,omitempty"`
	Topic          string `json:"topic,omitempty"`
	DateOfPractice Date   `json:"date_of_practice"`
	Note           string `json:"note,omitempty"`
}

// PracticeList は訓練一覧の1行を表す。
type PracticeList struct {
	ID             int64  `json:"id"`
	CompanyName    string `json:"company_name,omitempty"`
	KindShortName  string `json:"kind_short_name,omitempty"`
	Topic          string `json:"topic,omitempty"`
	DateOfPractice Date   `json:"date_of_practice"`
}

// PracticeShort は実施日が近い訓練の簡易表現。
type PracticeShort struct {
	ID             int64  `json:"id"`
	CompanyID      int64  `json:"company_id"`
	CompanyName    string `json:"company_name,omitempty"`
	KindShortName  string `json:"kind_short_name,omitempty"`
	DateOfPractice Date   `json:"date_of_practice"`
}

// Siren は設置済みサイレンを表す。
type Siren struct {
	ID          int64   `json:"id"`
	NumID       int64   `json:"num_id,omitempty"`
	NumPass     string  `json:"num_pass,omitempty"`
	SirenTypeID int64   `json:"siren_type_id,omitempty"`
	Address     string  `json:"address,omitempty"`
	Radio       string  `json:"radio,omitempty"`
	Desk        string  `json:"desk,omitempty"`
	ContactID   int64   `json:"contact_id,omitempty"`
	CompanyID   int64   `json:"company_id,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	Stage       int64   `json:"stage,omitempty"`
	Own         string  `json:"own,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// SirenList はサイレン一覧の1行を表す。
type SirenList struct {
	ID            int64  `json:"id"`
	SirenTypeName string `json:"siren_type_name,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactName   string `json:"contact_name,omitempty"`
}

// SelectItem は選択肢用のID・ラベルの組を表す。
type SelectItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
