package validation

import "gamevault/backend/internal/models"

// Vocabulary holds the closed vocabularies the catalog validates against. It
// is built once at startup and handed to Register; nothing else in the
// application consults vocabulary globals.
type Vocabulary struct {
	Genres    []string
	Platforms []string
	Roles     []string
}

// DefaultVocabulary returns the catalog's fixed vocabularies.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Genres: []string{
			"Adventure", "Action", "RPG", "Fantasy", "Strategy",
			"Simulation", "Shooter", "Racing", "Sport",
		},
		Platforms: []string{
			"PlayStation 5", "PlayStation 4", "Xbox Series",
			"Xbox One", "PC", "Nintendo",
		},
		Roles: []string{models.RoleDeveloper, models.RolePublisher},
	}
}

func (v Vocabulary) HasGenre(s string) bool    { return contains(v.Genres, s) }
func (v Vocabulary) HasPlatform(s string) bool { return contains(v.Platforms, s) }
func (v Vocabulary) HasRole(s string) bool     { return contains(v.Roles, s) }

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
