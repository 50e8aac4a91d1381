package organization

import (
	"time"

	"hrms/internal/domain/core"
)

type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"organizationUrl"`
	Mail        string    `json:"organizationMail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SignupInput bootstraps a tenant together with its first HR-Admin.
type SignupInput struct {
	Organization Organization        `json:"organization"`
	Admin        core.HumanResources `json:"admin"`
}

type SignupResult struct {
	Organization *Organization        `json:"organization"`
	Admin        *core.HumanResources `json:"admin"`
}
