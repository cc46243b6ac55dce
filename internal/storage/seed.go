package storage

import (
	"context"
	"fmt"
	"sort"

	"levelup/internal/engine"
	"levelup/internal/mapper"
	"levelup/internal/sheets"
)

// Seed writes the tab headers, the default character block and the seeded
// resources. Tabs that already hold a header are left alone unless force
// is set, so seeding an existing workbook does not clobber its data.
func (w *Workbook) Seed(ctx context.Context, force bool) (int, error) {
	tabs := make([]string, 0, len(sheets.Headers))
	for tab := range sheets.Headers {
		tabs = append(tabs, tab)
	}
	sort.Strings(tabs)

	seeded := 0
	for _, tab := range tabs {
		existing, err := w.Read(ctx, tab+"!A1:A1")
		if err != nil {
			return seeded, err
		}
		if len(existing) > 0 && !force {
			continue
		}
		if err := w.seedTab(ctx, tab); err != nil {
			return seeded, fmt.Errorf("seed %s: %w", tab, err)
		}
		seeded++
	}
	w.logger.Info("workbook seeded", "tabs", seeded)
	return seeded, nil
}

func (w *Workbook) seedTab(ctx context.Context, tab string) error {
	switch tab {
	case "Character":
		// The key/value block starts on row 1, so the character takes the
		// place of a header.
		return w.Write(ctx, sheets.RangeCharacterBlock, mapper.CharacterRows(engine.NewCharacter()))
	case "Resources":
		rows := [][]string{sheets.Headers[tab]}
		for _, r := range engine.DefaultResources() {
			rows = append(rows, mapper.ResourceRow(r))
		}
		return w.Write(ctx, "Resources!A1:F5", rows)
	default:
		header := sheets.Headers[tab]
		return w.Write(ctx, fmt.Sprintf("%s!A1:%s1", tab, sheets.ColumnName(len(header))), [][]string{header})
	}
}
