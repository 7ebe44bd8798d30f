package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// SetAdminClaimOutput is the result of a claim change.
type SetAdminClaimOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProvisionResult is the outcome of provisioning one bootstrap email.
type ProvisionResult struct {
	Email string
	UID   string
	Err   error
}

// AdminUsecase manages the isAdmin custom claim.
type AdminUsecase interface {
	// SetAdminClaim grants or revokes admin rights. Only admins may call it.
	SetAdminClaim(ctx context.Context, caller *entity.Caller, targetUID string, isAdmin bool) (*SetAdminClaimOutput, error)

	// ProvisionAdmins grants the claim to each email. It is the bootstrap step and is not caller-gated.
	ProvisionAdmins(ctx context.Context, emails []string) []ProvisionResult
}
