package db_models

type User struct {
	BaseModel
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	FullName     *string
	PasswordHash string       `gorm:"not null"`
	Plans        []TravelPlan `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
