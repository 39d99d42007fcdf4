package model

// Identified は主キーを持つレコード。
type Identified interface {
	EntityID() int64
}

func (v Certificate) EntityID() int64 { return v.ID }
func (v Company) EntityID() int64     { return v.ID }
func (v Contact) EntityID() int64     { return v.ID }
func (v Department) EntityID() int64  { return v.ID }
func (v Education) EntityID() int64   { return v.ID }
func (v Kind) EntityID() int64        { return v.ID }
func (v Post) EntityID() int64        { return v.ID }
func (v Practice) EntityID() int64    { return v.ID }
func (v Rank) EntityID() int64        { return v.ID }
func (v Scope) EntityID() int64       { return v.ID }
func (v Siren) EntityID() int64       { return v.ID }
func (v SirenType) EntityID() int64   { return v.ID }
func (v User) EntityID() int64        { return v.ID }
