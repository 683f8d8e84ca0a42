package application

import (
	"github.com/sirupsen/logrus"

	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
)

// AdminService aggregates sounds with their report counts and resolves report
// details for the moderation view.
type AdminService struct {
	Sounds  repository.SoundRepository
	Reports repository.ReportRepository
	Users   repository.UserRepository
	Logger  *logrus.Logger
}

func NewAdminService(sounds repository.SoundRepository, reports repository.ReportRepository, users repository.UserRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Sounds: sounds, Reports: reports, Users: users, Logger: logger}
}

// ListSoundsWithReportCounts pairs every pin, public or private, with the
// number of reports referencing it.
func (s *AdminService) ListSoundsWithReportCounts() ([]entity.ReportedSound, error) {
	sounds, err := s.Sounds.All()
	if err != nil {
		return nil, err
	}
	reports, err := s.Reports.All()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(reports))
	for _, r := range reports {
		counts[r.SoundID]++
	}
	out := make([]entity.ReportedSound, 0, len(sounds))
	for _, snd := range sounds {
		out = append(out, entity.ReportedSound{Sound: snd, Reports: counts[snd.ID]})
	}
	return out, nil
}

// DeleteSound hard-deletes a pin. Deleting an id that is not present succeeds
// silently with no effect.
func (s *AdminService) DeleteSound(soundID string) error {
	if err := s.Sounds.Delete(soundID); err != nil {
		return err
	}
	s.Logger.WithField("sound_id", soundID).Info("sound deleted")
	return nil
}

// ListReportsWithDetails resolves each report's sound and reporter, leaving
// null where a reference dangles.
func (s *AdminService) ListReportsWithDetails() ([]entity.ReportView, error) {
	reports, err := s.Reports.All()
	if err != nil {
		return nil, err
	}
	sounds, err := s.Sounds.All()
	if err != nil {
		return nil, err
	}
	users, err := s.Users.All()
	if err != nil {
		return nil, err
	}

	soundsByID := make(map[string]*entity.Sound, len(sounds))
	for i := range sounds {
		soundsByID[sounds[i].ID] = &sounds[i]
	}
	usersByID := make(map[string]*entity.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}

	out := make([]entity.ReportView, 0, len(reports))
	for _, r := range reports {
		view := entity.ReportView{Report: r}
		if snd, ok := soundsByID[r.SoundID]; ok {
			view.Sound = snd
		}
		if u, ok := usersByID[r.UserID]; ok {
			// Reporter summary carries id and name only
			view.Reporter = &entity.UserSummary{ID: u.ID, Name: u.Name}
		}
		out = append(out, view)
	}
	return out, nil
}
