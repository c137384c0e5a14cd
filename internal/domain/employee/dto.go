package employee

type EmployeeResponse struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Shift string `json:"shift"`
}
