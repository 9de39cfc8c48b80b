package models

type BgColorModel struct {
	ID        int    `json:"bgcolor_id" gorm:"column:bgcolor_id;primaryKey;autoIncrement"`
	Name      string `json:"bgcolor_name" gorm:"column:bgcolor_name;type:varchar(255);not null"`
	HexcodeID int    `json:"hexcode_id" gorm:"column:hexcode_id;not null"`
}

func (BgColorModel) TableName() string { return "bgcolor" }

func (m *BgColorModel) PrimaryKey() int      { return m.ID }
func (m *BgColorModel) SetPrimaryKey(id int) { m.ID = id }
