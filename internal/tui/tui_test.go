package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/vehicle-catalog/internal/catalog"
	"github.com/handiism/vehicle-catalog/internal/config"
	"github.com/handiism/vehicle-catalog/internal/model"
)

func loadedModel(t *testing.T) Model {
	t.Helper()

	truck, err := model.NewTruck("Volvo", "t.png", 12, "2x3x4")
	if err != nil {
		t.Fatal(err)
	}

	m := NewModel(config.DefaultSettings())
	updated, _ := m.Update(LoadedMsg{
		Path: "cars.csv",
		Vehicles: []model.Vehicle{
			model.NewCar("Toyota", "photo1.jpg", 3.5, 5),
			truck,
			model.NewSpecMachine("JCB", "jcb.png", 8, "backhoe"),
			model.NewCar("Lada", "lada.jpg", 1, 4),
		},
		Stats: catalog.Stats{Rows: 5, Loaded: 4, Skipped: map[catalog.SkipReason]int{catalog.SkipUnknownKind: 1}},
		Events: []catalog.Event{
			{Message: "Line 4 skipped (unknown kind): unknown kind \"motorbike\"", Level: catalog.LevelVerbose},
		},
	})
	return updated.(Model)
}

func TestModel_Loaded(t *testing.T) {
	m := loadedModel(t)

	if m.state != StateBrowsing {
		t.Fatalf("state = %v, want StateBrowsing", m.state)
	}
	if len(m.Visible()) != 4 {
		t.Errorf("got %d visible vehicles, want 4", len(m.Visible()))
	}

	view := m.View()
	for _, want := range []string{"cars.csv: 4 vehicles", "1 rows skipped", "Toyota", "2.0x3.0x4.0 (24.0 m³)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestModel_FilterCycle(t *testing.T) {
	m := loadedModel(t)

	tab := tea.KeyMsg{Type: tea.KeyTab}
	wantCounts := map[model.Kind]int{
		model.KindCar:         2,
		model.KindTruck:       1,
		model.KindSpecMachine: 1,
		"":                    4,
	}

	for i := 0; i < len(filters); i++ {
		updated, _ := m.Update(tab)
		m = updated.(Model)

		kind := m.Filter()
		if got := len(m.Visible()); got != wantCounts[kind] {
			t.Errorf("filter %q: got %d vehicles, want %d", kind, got, wantCounts[kind])
		}
		for _, v := range m.Visible() {
			if kind != "" && v.Kind() != kind {
				t.Errorf("filter %q: unexpected %s", kind, v)
			}
		}
	}

	if m.Filter() != "" {
		t.Errorf("filter should wrap around to all, got %q", m.Filter())
	}
}

func TestModel_DetailAndLogs(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.showDetail {
		t.Fatal("enter should open the detail pane")
	}
	if !strings.Contains(m.View(), "car: Toyota 3.5 5") {
		t.Error("detail pane should show the summary")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(Model)
	if !strings.Contains(m.View(), "motorbike") {
		t.Error("skipped rows should be listed")
	}
}

func TestModel_LoadError(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	updated, _ := m.Update(LoadedMsg{Path: "missing.csv", Err: errors.New("load catalog missing.csv: no such file")})
	m = updated.(Model)

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if !strings.Contains(m.View(), "no such file") {
		t.Error("view should show the error")
	}
}

func TestModel_LoadCatalogCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.csv")
	content := "header\ncar;Toyota;5;photo1.jpg;;3.5;\nmotorbike;Ducati;1;d.jpg;;0.2;\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewModel(config.DefaultSettings())
	msg := m.loadCatalog(path)()

	loaded, ok := msg.(LoadedMsg)
	if !ok {
		t.Fatalf("got %T, want LoadedMsg", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("unexpected error: %v", loaded.Err)
	}
	if len(loaded.Vehicles) != 1 || loaded.Stats.SkippedTotal() != 1 {
		t.Errorf("got %d vehicles and %d skipped rows", len(loaded.Vehicles), loaded.Stats.SkippedTotal())
	}
	if len(loaded.Events) != 2 {
		t.Errorf("got %d events, want 2", len(loaded.Events))
	}
}
