package teams

import "garu-data-service/internal/domain/teams"

// Service serves the static franchise table.
type Service struct {
	teams []teams.Team
}

// NewService constructs a Service over the current franchise table.
func NewService() *Service {
	return &Service{teams: teams.All()}
}

// Teams returns every current franchise in id order.
func (s *Service) Teams() []teams.Team {
	out := make([]teams.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// TeamByAbbreviation returns a single franchise if the code is current or historical.
func (s *Service) TeamByAbbreviation(abbr string) (teams.Team, bool) {
	return teams.ByAbbreviation(teams.CurrentAbbreviation(abbr))
}
