package employee

type Employee struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"not null"`
	Username   string  `gorm:"not null;uniqueIndex:uq_employees_username"`
	Department string  `gorm:"not null"`
	Salary     float64 `gorm:"not null"`
}

func (Employee) TableName() string {
	return "employees"
}
