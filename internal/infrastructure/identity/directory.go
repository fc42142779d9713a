package identity

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

type directoryFile struct {
	Parties []entities.Party `yaml:"parties"`
}

// Directory resolves party references against a static list loaded from
// YAML. With no list loaded it runs in passthrough mode and accepts any
// non-empty reference, which suits local runs without an identity service.
type Directory struct {
	mu          sync.RWMutex
	parties     map[string]entities.Party
	passthrough bool
}

var _ interfaces.IIdentityProvider = (*Directory)(nil)

// NewPassthroughDirectory accepts every non-empty reference.
func NewPassthroughDirectory() *Directory {
	return &Directory{parties: map[string]entities.Party{}, passthrough: true}
}

func NewDirectory(parties []entities.Party) *Directory {
	d := &Directory{parties: make(map[string]entities.Party, len(parties))}
	for _, p := range parties {
		d.parties[p.ID] = p
	}
	return d
}

// LoadDirectory reads a YAML file of the form:
//
//	parties:
//	  - id: landlord-1
//	    display_name: Ana Souza
//	    contact_channel: ana@example.com
func LoadDirectory(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read party directory: %w", err)
	}
	return ParseDirectory(raw)
}

func ParseDirectory(raw []byte) (*Directory, error) {
	var f directoryFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse party directory: %w", err)
	}
	for i, p := range f.Parties {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("parse party directory: entry %d has no id", i)
		}
	}
	return NewDirectory(f.Parties), nil
}

func (d *Directory) ResolveParty(_ context.Context, ref string) (entities.Party, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return entities.Party{}, fmt.Errorf("%w: empty reference", interfaces.ErrPartyNotFound)
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if p, ok := d.parties[ref]; ok {
		return p, nil
	}
	if d.passthrough {
		return entities.Party{ID: ref}, nil
	}
	return entities.Party{}, fmt.Errorf("%w: %s", interfaces.ErrPartyNotFound, ref)
}

// Upsert adds or replaces a party.
func (d *Directory) Upsert(p entities.Party) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parties[p.ID] = p
}
