package commands

import (
	"context"

	"booking-system/internal/domain/resource"
	reqdto "booking-system/internal/handler/dto/request"
	"booking-system/internal/infra"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/usecase/queries"
	"booking-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	Update(ctx context.Context, r *resource.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
}

type ResourceCommands interface {
	Create(ctx context.Context, req reqdto.CreateResourceRequest, actor shared.Actor) (*queries.ResourceView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateResourceRequest, actor shared.Actor) (*queries.ResourceView, error)
	Delete(ctx context.Context, id uuid.UUID, actor shared.Actor) error
}

type resourceUseCaseImpl struct {
	resourceRepo    ResourceRepository
	resourceQueries queries.ResourceQueries
}

func NewResourceUseCase(
	resourceRepo ResourceRepository,
	resourceQueries queries.ResourceQueries,
) ResourceCommands {
	return &resourceUseCaseImpl{
		resourceRepo:    resourceRepo,
		resourceQueries: resourceQueries,
	}
}

func (u *resourceUseCaseImpl) Create(
	ctx context.Context,
	req reqdto.CreateResourceRequest,
	actor shared.Actor,
) (*queries.ResourceView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}

	resourceType, err := resource.NewType(req.ResourceType)
	if err != nil {
		return nil, err
	}

	entity, err := resource.NewResource(
		req.Name,
		req.Description,
		resourceType,
		req.Capacity,
		true,
		req.Location,
		priceToCents(req.PricePerHour),
	)
	if err != nil {
		return nil, err
	}

	if err := u.resourceRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.resourceQueries.GetByID(ctx, entity.ID())
}

func (u *resourceUseCaseImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateResourceRequest,
	actor shared.Actor,
) (*queries.ResourceView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}

	entity, err := u.findResource(ctx, id)
	if err != nil {
		return nil, err
	}

	var resourceType *resource.Type
	if req.ResourceType != nil {
		t, err := resource.NewType(*req.ResourceType)
		if err != nil {
			return nil, err
		}
		resourceType = &t
	}

	if err := entity.Update(
		req.Name,
		req.Description,
		resourceType,
		req.Capacity,
		req.IsAvailable,
		req.Location,
		priceToCents(req.PricePerHour),
	); err != nil {
		return nil, err
	}

	if err := u.resourceRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.resourceQueries.GetByID(ctx, entity.ID())
}

func (u *resourceUseCaseImpl) Delete(
	ctx context.Context,
	id uuid.UUID,
	actor shared.Actor,
) error {
	if !actor.IsAdmin() {
		return errs.ErrUnauthorized
	}

	if _, err := u.findResource(ctx, id); err != nil {
		return err
	}
	if err := u.resourceRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *resourceUseCaseImpl) findResource(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	entity, err := u.resourceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func priceToCents(price *float64) *int64 {
	if price == nil {
		return nil
	}
	cents := int64(*price * 100)
	return &cents
}
