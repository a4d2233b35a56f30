package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/fs"
	"github.com/calvinalkan/lifespace/internal/store"
)

func sample(t *testing.T) []activity.Activity {
	t.Helper()

	importance, _ := activity.NewImportance(70)
	effort, _ := activity.NewEffort(4)
	pleasure, _ := activity.NewPleasure(-20)
	from, _ := activity.NewUrgency(10)
	to, _ := activity.NewUrgency(90)

	return []activity.Activity{
		activity.New(
			"taxes",
			activity.UrgencyDescriptor{
				Interval: activity.Delta[time.Time]{
					Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC),
				},
				Urgency: activity.Delta[activity.Urgency]{Start: from, End: to},
			},
			importance,
			effort,
			pleasure,
		),
	}
}

func TestOpenCreatesDirectoryAndEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".life-space", "activities.json")

	s, created, err := store.Open(fs.NewReal(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if !created {
		t.Error("created=false, want true")
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got) != 0 || got == nil {
		t.Errorf("load=%#v, want empty non-nil slice", got)
	}

	_, created, err = store.Open(fs.NewReal(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	if created {
		t.Error("reopen created=true, want false")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")

	s, _, err := store.Open(fs.NewReal(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	want := sample(t)

	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")

	s, _, err := store.Open(fs.NewReal(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if got, want := string(data), "[]\n"; got != want {
		t.Errorf("content=%q, want=%q", got, want)
	}
}

func TestLoadToleratesCommentsAndLegacyShape(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")
	content := `[
		// written by hand
		{
			"Name": "gym",
			"Urgency": {
				"Interval": {"Start": "2024-01-01T00:00:00", "End": "2024-01-08T00:00:00"},
				"Urgency": {"Start": {"Value": 0}, "End": {"Value": 50}},
			},
			"Importance": {"Value": 60},
			"Effort": {"Value": 2},
			"Pleasure": {"Value": 30},
		},
	]`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	s, _, err := store.Open(fs.NewReal(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("len=%d, want=1", len(got))
	}

	if got[0].Name != "gym" || got[0].Importance.Int() != 60 || got[0].Urgency.Urgency.End.Int() != 50 {
		t.Errorf("unexpected activity: %+v", got[0])
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		content string
	}{
		{"not json", "activities: none"},
		{"out of range", `[{"name": "x", "urgency": {"interval": {"start": "2024-01-01", "end": "2024-01-02"}, "urgency": {"start": 0, "end": 1}}, "importance": 1, "effort": 99, "pleasure": 0}]`},
		{"object instead of array", `{"name": "x"}`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "activities.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			s, _, err := store.Open(fs.NewReal(), path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}

			_, err = s.Load()
			if !errors.Is(err, store.ErrCorrupt) {
				t.Errorf("err=%v, want ErrCorrupt", err)
			}
		})
	}
}

func TestPersistenceFailures(t *testing.T) {
	t.Parallel()

	t.Run("failed save keeps previous collection", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "activities.json")
		chaos := fs.NewChaos(fs.NewReal(), 1, fs.ChaosConfig{})

		s, _, err := store.Open(chaos, path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}

		if err := s.Save(sample(t)); err != nil {
			t.Fatalf("save: %v", err)
		}

		chaos.SetPathState(path, fs.PathReadOnly)

		err = s.Save(nil)
		if !errors.Is(err, store.ErrWrite) || !errors.Is(err, syscall.EROFS) {
			t.Fatalf("err=%v, want ErrWrite wrapping EROFS", err)
		}

		got, err := s.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if len(got) != 1 {
			t.Errorf("len=%d, want previous collection of 1", len(got))
		}
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "activities.json")
		chaos := fs.NewChaos(fs.NewReal(), 1, fs.ChaosConfig{})

		s, _, err := store.Open(chaos, path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}

		chaos.SetPathState(path, fs.PathIOError)

		_, err = s.Load()
		if !errors.Is(err, store.ErrRead) || !fs.IsInjected(err) {
			t.Errorf("err=%v, want injected ErrRead", err)
		}
	})

	t.Run("init failure", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sub", "activities.json")
		chaos := fs.NewChaos(fs.NewReal(), 1, fs.ChaosConfig{MkdirFailRate: 1})

		_, _, err := store.Open(chaos, path)
		if !errors.Is(err, store.ErrInit) {
			t.Errorf("err=%v, want ErrInit", err)
		}
	})
}
