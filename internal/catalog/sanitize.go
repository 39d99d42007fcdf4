package catalog

import "github.com/hitoshi/rpelgate/internal/model"

// 保存前に自由入力の文字列フィールドからマークアップを除去する。
// ID・日付・数値フィールドはそのまま。

func (c *Catalog) cleanCertificate(v model.Certificate) model.Certificate {
	v.Num = c.clean(v.Num)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanCompany(v model.Company) model.Company {
	v.Name = c.clean(v.Name)
	v.Address = c.clean(v.Address)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanContact(v model.Contact) model.Contact {
	v.Name = c.clean(v.Name)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanDepartment(v model.Department) model.Department {
	v.Name = c.clean(v.Name)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanEducation(v model.Education) model.Education {
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanKind(v model.Kind) model.Kind {
	v.Name = c.clean(v.Name)
	v.ShortName = c.clean(v.ShortName)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanPost(v model.Post) model.Post {
	v.Name = c.clean(v.Name)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanPractice(v model.Practice) model.Practice {
	v.Topic = c.clean(v.Topic)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanRank(v model.Rank) model.Rank {
	v.Name = c.clean(v.Name)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanScope(v model.Scope) model.Scope {
	v.Name = c.clean(v.Name)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanSiren(v model.Siren) model.Siren {
	v.NumPass = c.clean(v.NumPass)
	v.Address = c.clean(v.Address)
	v.Radio = c.clean(v.Radio)
	v.Desk = c.clean(v.Desk)
	v.Own = c.clean(v.Own)
	v.Note = c.clean(v.Note)
	return v
}

func (c *Catalog) cleanSirenType(v model.SirenType) model.SirenType {
	v.Name = c.clean(v.Name)
	v.Note = c.clean(v.Note)
	return v
}
