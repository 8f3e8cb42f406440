package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tilemerge/internal/board"
)

func tiles(cells []int) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}

func TestCreateAndGet(t *testing.T) {
	m := NewManager()

	st, err := m.Create(4, 4, 42)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if st.ID == "" {
		t.Fatal("Create returned an empty id")
	}
	if st.Width != 4 || st.Height != 4 || len(st.Cells) != 16 {
		t.Errorf("state = %dx%d with %d cells", st.Width, st.Height, len(st.Cells))
	}
	if n := tiles(st.Cells); n != 2 {
		t.Errorf("new board has %d tiles, want 2", n)
	}

	got, err := m.Get(st.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != st.ID || len(got.Cells) != len(st.Cells) {
		t.Errorf("Get = %+v, want %+v", got, st)
	}
}

func TestCreateRejectsBadSize(t *testing.T) {
	m := NewManager()
	if _, err := m.Create(1, 1, 1); !errors.Is(err, board.ErrInvalidDimensions) {
		t.Errorf("Create(1, 1) error = %v, want ErrInvalidDimensions", err)
	}
	if m.Count() != 0 {
		t.Errorf("failed Create left %d sessions", m.Count())
	}
}

func TestUnknownSession(t *testing.T) {
	m := NewManager()

	if _, err := m.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if _, _, err := m.Move("nope", board.DirLeft); !errors.Is(err, ErrNotFound) {
		t.Errorf("Move error = %v, want ErrNotFound", err)
	}
	if _, err := m.Reset("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Reset error = %v, want ErrNotFound", err)
	}
	if m.Delete("nope") {
		t.Error("Delete of unknown session reported true")
	}
}

func TestMoveIsNotHeldBySettle(t *testing.T) {
	m := NewManager()
	st, err := m.Create(4, 4, 7)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	accepted := 0
	for i := 0; i < 20; i++ {
		dir := board.Directions[i%len(board.Directions)]
		res, got, err := m.Move(st.ID, dir)
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if got.Settling {
			t.Fatal("remote session left settling after a move")
		}
		if res.Changed {
			accepted++
		}
		if got.Moves != accepted {
			t.Fatalf("moves = %d, want %d", got.Moves, accepted)
		}
	}
}

func TestResetKeepsSize(t *testing.T) {
	m := NewManager()
	st, err := m.Create(6, 4, 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	m.Move(st.ID, board.DirLeft)
	m.Move(st.ID, board.DirUp)

	reset, err := m.Reset(st.ID)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if reset.Width != 6 || reset.Height != 4 || reset.Moves != 0 {
		t.Errorf("after Reset: %dx%d moves=%d", reset.Width, reset.Height, reset.Moves)
	}
	if n := tiles(reset.Cells); n != 2 {
		t.Errorf("after Reset: %d tiles, want 2", n)
	}
}

func TestListAndDelete(t *testing.T) {
	m := NewManager()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	first, _ := m.Create(4, 4, 1)
	clock = clock.Add(time.Second)
	second, _ := m.Create(3, 3, 2)

	list := m.List()
	if len(list) != 2 {
		t.Fatalf("List() has %d entries, want 2", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Errorf("List() order = %s, %s", list[0].ID, list[1].ID)
	}
	if list[1].Width != 3 {
		t.Errorf("second session width = %d, want 3", list[1].Width)
	}

	if !m.Delete(first.ID) {
		t.Error("Delete reported a missing session")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d after delete, want 1", m.Count())
	}
}

func TestSweep(t *testing.T) {
	m := NewManager()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	stale, _ := m.Create(4, 4, 1)
	fresh, _ := m.Create(4, 4, 2)

	clock = clock.Add(10 * time.Minute)
	if _, err := m.Get(fresh.ID); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	clock = clock.Add(time.Minute)

	if removed := m.Sweep(5 * time.Minute); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if _, err := m.Get(stale.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stale session still present: %v", err)
	}
	if _, err := m.Get(fresh.ID); err != nil {
		t.Errorf("fresh session swept: %v", err)
	}
}

func TestSweepSkipsPinned(t *testing.T) {
	m := NewManager()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	owned, _ := m.Create(4, 4, 1)
	loose, _ := m.Create(4, 4, 2)
	if err := m.Pin(owned.ID); err != nil {
		t.Fatalf("Pin failed: %v", err)
	}

	clock = clock.Add(time.Hour)
	if removed := m.Sweep(time.Minute); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if _, err := m.Get(owned.ID); err != nil {
		t.Errorf("pinned session swept: %v", err)
	}
	if _, err := m.Get(loose.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("unpinned idle session still present: %v", err)
	}

	if !m.Delete(owned.ID) {
		t.Error("Delete of pinned session returned false")
	}
	if err := m.Pin(owned.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Pin(deleted) = %v, want ErrNotFound", err)
	}
}

func TestConcurrentMoves(t *testing.T) {
	m := NewManager()
	st, err := m.Create(4, 4, 9)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				m.Move(st.ID, board.Directions[(i+j)%len(board.Directions)])
				m.List()
			}
		}(i)
	}
	wg.Wait()

	final, err := m.Get(st.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	for _, c := range final.Cells {
		if c != 0 && (c < 2 || c&(c-1) != 0) {
			t.Errorf("invalid tile %d after concurrent moves", c)
		}
	}
}
