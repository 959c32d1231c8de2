package models

type SoftwareModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null;index"`
	Version string `gorm:"size:50"`
}

func (SoftwareModel) TableName() string {
	return "software_catalog"
}
