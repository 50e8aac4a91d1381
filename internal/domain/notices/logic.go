package notices

import (
	"strings"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

func normalize(n *Notice) {
	n.Title = strings.TrimSpace(n.Title)
	n.Content = strings.TrimSpace(n.Content)
	n.DepartmentID = strings.TrimSpace(n.DepartmentID)
	n.EmployeeID = strings.TrimSpace(n.EmployeeID)
}

// validate requires the target that matches the audience and nothing else.
func validate(n Notice) error {
	v := validation.New()
	v.Required("title", n.Title)
	v.MaxLen("title", n.Title, 100)
	v.Required("content", n.Content)
	v.MaxLen("content", n.Content, 1000)
	v.Required("createdById", n.CreatedByID)
	v.Enum("audience", n.Audience.Valid(), enums.AudienceTypes())
	switch n.Audience {
	case enums.AudienceDepartment:
		v.Required("departmentId", n.DepartmentID)
		if n.EmployeeID != "" {
			v.Add("employeeId", "must be empty for "+string(n.Audience))
		}
	case enums.AudienceEmployee:
		v.Required("employeeId", n.EmployeeID)
		if n.DepartmentID != "" {
			v.Add("departmentId", "must be empty for "+string(n.Audience))
		}
	}
	return v.Err()
}
