package employee

type CreateEmployeeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Username   string   `json:"username" binding:"required"`
	Department string   `json:"department" binding:"required"`
	Salary     *float64 `json:"salary" binding:"required"`
}

// UpdateEmployeeRequest carries a partial patch: nil (or, for text fields,
// blank after trimming) leaves the stored value untouched.
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name"`
	Username   *string  `json:"username"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary"`
}

type EmployeeResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}
