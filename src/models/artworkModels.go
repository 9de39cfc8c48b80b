package models

// ArtworkModel is a piece of art that can be printed on a case.
type ArtworkModel struct {
	ID        int     `json:"artwork_id" gorm:"column:artwork_id;primaryKey;autoIncrement"`
	Title     string  `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Artist    *string `json:"artist" gorm:"column:artist;type:varchar(255)"`
	ImagePath string  `json:"image_path" gorm:"column:image_path;type:varchar(1024);not null"`
}

func (ArtworkModel) TableName() string { return "artwork" }

func (m *ArtworkModel) PrimaryKey() int      { return m.ID }
func (m *ArtworkModel) SetPrimaryKey(id int) { m.ID = id }
