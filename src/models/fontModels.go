package models

// FontModel references a font asset by path; the file itself is not stored.
type FontModel struct {
	ID        int    `json:"font_id" gorm:"column:font_id;primaryKey;autoIncrement"`
	Name      string `json:"font_name" gorm:"column:font_name;type:varchar(255);not null"`
	HexcodeID int    `json:"hexcode_id" gorm:"column:hexcode_id;not null"`
	FilePath  string `json:"font_file_path" gorm:"column:font_file_path;type:varchar(1024);not null"`
}

func (FontModel) TableName() string { return "font" }

func (m *FontModel) PrimaryKey() int      { return m.ID }
func (m *FontModel) SetPrimaryKey(id int) { m.ID = id }
