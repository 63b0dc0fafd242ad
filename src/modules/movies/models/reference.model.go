package movies

import "gorm.io/gorm"

// Reference entities are shared across movies; many movies may point at the
// same genre/country/person row.

type Genre struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(120);uniqueIndex;not null"`
}

type Country struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(120);uniqueIndex;not null"`
}

// Person full names are indexed but not unique.
type Person struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FullName string `json:"full_name" gorm:"type:varchar(200);index;not null"`
}

func MigrateReferences(db *gorm.DB) error {
	return db.AutoMigrate(&Genre{}, &Country{}, &Person{})
}
