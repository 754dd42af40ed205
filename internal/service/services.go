package service

import (
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type Services struct {
	NotesService   NotesService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, bus EventBus, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	notesService := NewNotesValidationService().Wrap(
		NewNotesService(storages.NotesStorage, bus, logger),
	)

	return &Services{
		NotesService:   notesService,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
