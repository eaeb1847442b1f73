package spotlighting

import (
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
)

// SpotlightService expõe as consultas de leitura dos spotlights para a API
type SpotlightService interface {
	GetCurrentSpotlights(spotlightType domain.SpotlightType) ([]*domain.Spotlight, error)
	GetBusinessHistory(businessID string) ([]*domain.SpotlightHistory, error)
}

type Service struct {
	SpotlightRepository repository.SpotlightRepository
	HistoryRepository   repository.SpotlightHistoryRepository
	BusinessRepository  repository.BusinessRepository
}

func NewService(
	spotlightRepository repository.SpotlightRepository,
	historyRepository repository.SpotlightHistoryRepository,
	businessRepository repository.BusinessRepository,
) SpotlightService {
	return &Service{
		SpotlightRepository: spotlightRepository,
		HistoryRepository:   historyRepository,
		BusinessRepository:  businessRepository,
	}
}

func (s *Service) GetCurrentSpotlights(spotlightType domain.SpotlightType) ([]*domain.Spotlight, error) {
	if !spotlightType.IsValid() {
		return nil, ErrInvalidSpotlightType
	}

	spotlights, err := s.SpotlightRepository.ListActive(spotlightType)
	if err != nil {
		return nil, err
	}

	return spotlights, nil
}

func (s *Service) GetBusinessHistory(businessID string) ([]*domain.SpotlightHistory, error) {
	business, err := s.BusinessRepository.GetByID(businessID)
	if err != nil {
		return nil, err
	}

	if business == nil {
		return nil, ErrBusinessNotFound
	}

	history, err := s.HistoryRepository.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	return history, nil
}
