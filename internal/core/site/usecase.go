package site

import (
	"context"
	"fmt"

	"lotteryfrontend.app/internal/ports"
	"lotteryfrontend.app/pkg/errors"
)

type UseCase struct {
	store  ports.AssetStore
	logger ports.Logger
}

type UseCaseDependencies struct {
	Store  ports.AssetStore
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("asset store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		store:  deps.Store,
		logger: deps.Logger,
	}, nil
}

// Index opens the root document
func (uc *UseCase) Index(ctx context.Context) (*Asset, error) {
	return uc.Asset(ctx, AssetRequest{Path: IndexDocument})
}

// Asset opens the file named by request. Paths that try to leave the
// request's base directory are reported as not found.
func (uc *UseCase) Asset(ctx context.Context, request AssetRequest) (*Asset, error) {
	if err := request.IsValid(); err != nil {
		uc.logger.Warn("Rejected asset path",
			ports.F("base", request.Base),
			ports.F("path", request.Path),
			ports.F("reason", err.Error()))
		return nil, errors.NewNotFoundError("file not found")
	}

	name := request.Name()
	if name == "" {
		return nil, errors.NewNotFoundError("file not found")
	}

	file, err := uc.store.Open(ctx, name)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Debug("Asset not found", ports.F("name", name))
		} else {
			uc.logger.Error("Failed to open asset", ports.F("name", name), ports.F("error", err))
		}
		return nil, fmt.Errorf("open asset %s: %w", name, err)
	}

	uc.logger.Debug("Asset opened", ports.F("name", name), ports.F("size", file.Size))
	return &Asset{
		Name:        name,
		ContentType: ContentTypeFor(name),
		Size:        file.Size,
		ModTime:     file.ModTime,
		Content:     file.Content,
	}, nil
}
