package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/logger"
	"github.com/osse101/Scavenger_Go/internal/validation"
)

// rosterFile is the on-disk shape of a roster, see roster.schema.json
type rosterFile struct {
	Version     string        `json:"version"`
	Description string        `json:"description,omitempty"`
	Scavengers  []rosterEntry `json:"scavengers"`
}

type rosterEntry struct {
	Name   string `json:"name"`
	Policy string `json:"policy"`
	Held   string `json:"held"`
}

// LoadRoster registers every scavenger listed in the roster file at path.
// Names that are already registered are skipped. Returns how many were added.
func (s *service) LoadRoster(ctx context.Context, path string) (int, error) {
	if err := s.schemas.ValidateFile(path, validation.SchemaRoster); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgRosterInvalid, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgRosterRead, err)
	}

	var roster rosterFile
	if err := json.Unmarshal(data, &roster); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgRosterRead, err)
	}

	log := logger.FromContext(ctx)
	added := 0
	for i, entry := range roster.Scavengers {
		policy, err := domain.ParsePolicy(entry.Policy)
		if err != nil {
			return added, fmt.Errorf("%s %d: %w", ErrMsgRosterEntry, i, err)
		}
		held, err := codec.ParseArtifact(entry.Held)
		if err != nil {
			return added, fmt.Errorf("%s %d: %w", ErrMsgRosterEntry, i, err)
		}

		if _, err := s.Register(ctx, entry.Name, policy, held); err != nil {
			if errors.Is(err, domain.ErrScavengerExists) {
				log.Warn(LogMsgRosterEntrySkipped, "name", entry.Name)
				continue
			}
			return added, fmt.Errorf("%s %d: %w", ErrMsgRosterEntry, i, err)
		}
		added++
	}

	log.Info(LogMsgRosterLoaded, "path", path, "version", roster.Version, "added", added)
	return added, nil
}
