package models

type FontColorModel struct {
	ID        int    `json:"fontcolor_id" gorm:"column:fontcolor_id;primaryKey;autoIncrement"`
	Name      string `json:"fontcolor_name" gorm:"column:fontcolor_name;type:varchar(255);not null"`
	HexcodeID *int   `json:"hexcode_id" gorm:"column:hexcode_id"`
}

func (FontColorModel) TableName() string { return "fontcolor" }

func (m *FontColorModel) PrimaryKey() int      { return m.ID }
func (m *FontColorModel) SetPrimaryKey(id int) { m.ID = id }
