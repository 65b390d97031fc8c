package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mochihq/mochi/pkg/inventory"
	"github.com/mochihq/mochi/pkg/records"
	"github.com/mochihq/mochi/pkg/types"
)

// subdirs is the fixed directory subtree created on first use.
var subdirs = []string{
	"state",
	"inventory",
	"sessions",
	"content/notes",
	"content/ideas",
	"attachments",
	"integrations/notion",
}

// bootstrap creates the subtree and writes each default file only when it
// does not already exist. Running it against a populated directory changes
// nothing: user data is never overwritten.
func (s *Store) bootstrap() error {
	for _, d := range subdirs {
		if err := os.MkdirAll(filepath.Join(s.base, d), 0o750); err != nil {
			return fmt.Errorf("storage: create %s: %w", d, err)
		}
	}

	seeds := []struct {
		rel  string
		text func() string
	}{
		{PathConfig, func() string { return records.EncodeConfig(types.DefaultConfig()) }},
		{PathTasks, func() string { return records.EncodeTasks(nil) }},
		{PathGoals, func() string { return "# Objectifs\n" }},
		{PathProgress, func() string { return records.EncodeProgress(types.DefaultProgress()) }},
		{PathMeetings, func() string { return records.EncodeMeetings(nil) }},
		{PathInventory, func() string { return records.EncodeItems(inventory.DefaultItems()) }},
	}

	for _, seed := range seeds {
		path, err := s.resolve(seed.rel)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := s.Write(seed.rel, seed.text()); err != nil {
			return err
		}
		s.log.Infof("seeded %s", seed.rel)
	}
	return nil
}
