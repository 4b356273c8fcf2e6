package commands

import (
	"context"

	"hotelbook/internal/domain/user"
	reqdto "hotelbook/internal/handler/dto/request"
	"hotelbook/internal/infra"
	"hotelbook/internal/pkg/errs"
	"hotelbook/internal/pkg/password"
	"hotelbook/internal/usecase/queries"
)

var (
	ErrStaffValidation = errs.New("staff validation error")
	ErrEmailTaken      = errs.New("email already registered")
)

type StaffCommands interface {
	RegisterStaff(ctx context.Context, req reqdto.RegisterStaffRequest) (*queries.AuthorizedUserView, error)
}

type staffCommandsImpl struct {
	userRepo UserRepository
}

func NewStaffCommands(userRepo UserRepository) StaffCommands {
	return &staffCommandsImpl{userRepo: userRepo}
}

func (c *staffCommandsImpl) RegisterStaff(ctx context.Context, req reqdto.RegisterStaffRequest) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrStaffValidation)
	}

	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrStaffValidation)
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrStaffValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := user.NewUser(email, hash, req.DisplayName, role)

	if err := c.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.AuthorizedUserView{
		ID:          entity.ID(),
		Email:       entity.Email().Value(),
		DisplayName: entity.DisplayName(),
		Role:        entity.Role().String(),
		IsActive:    entity.IsActive(),
	}, nil
}
