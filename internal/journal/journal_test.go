package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/theirongolddev/atelier/internal/ledger"
	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/store"
)

// countingStore wraps a Memory store and counts writes.
type countingStore struct {
	*store.Memory
	puts    int
	failPut error
	failGet error
}

func newCountingStore() *countingStore {
	return &countingStore{Memory: store.NewMemory()}
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if c.failGet != nil {
		return nil, c.failGet
	}
	return c.Memory.Get(ctx, key)
}

func (c *countingStore) Put(ctx context.Context, key string, value []byte) error {
	if c.failPut != nil {
		return c.failPut
	}
	c.puts++
	return c.Memory.Put(ctx, key, value)
}

func stored(t *testing.T, st Store) string {
	t.Helper()
	raw, err := st.Get(context.Background(), SnapshotKey)
	if err != nil {
		t.Fatalf("Get snapshot: %v", err)
	}
	return string(raw)
}

func TestOpen_EmptyStore(t *testing.T) {
	j := Open(context.Background(), store.NewMemory(), nil)
	if j.Len() != 0 {
		t.Fatalf("Len = %d, want 0", j.Len())
	}
}

func TestOpen_CorruptSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"null", "not json", `[{"bad":"shape"}]`} {
		st := store.NewMemory()
		_ = st.Put(ctx, SnapshotKey, []byte(raw))
		if j := Open(ctx, st, nil); j.Len() != 0 {
			t.Errorf("Open with %q: Len = %d, want 0", raw, j.Len())
		}
	}
}

func TestOpen_StoreErrorStartsEmpty(t *testing.T) {
	st := newCountingStore()
	st.failGet = errors.New("disk on fire")
	if j := Open(context.Background(), st, nil); j.Len() != 0 {
		t.Fatalf("Len = %d, want 0", j.Len())
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	j := Open(ctx, st, nil)

	if _, err := j.Add(ctx, "Rent", 800, model.Fixed); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if st.puts != 1 {
		t.Fatalf("puts after add = %d, want 1", st.puts)
	}
	if got := stored(t, st); got != `[{"desc":"Rent","amount":800,"category":"Fixed"}]` {
		t.Fatalf("stored = %s", got)
	}

	if _, err := j.AddRaw(ctx, "Salary", "2000", "Income"); err != nil {
		t.Fatalf("AddRaw: %v", err)
	}
	if _, ok, err := j.RemoveAt(ctx, 1); err != nil || !ok {
		t.Fatalf("RemoveAt(1) = %v, %v", ok, err)
	}
	if got := stored(t, st); got != `[{"desc":"Salary","amount":2000,"category":"Income"}]` {
		t.Fatalf("stored after remove = %s", got)
	}

	if err := j.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := stored(t, st); got != "[]" {
		t.Fatalf("stored after clear = %s", got)
	}
	if st.puts != 4 {
		t.Fatalf("puts = %d, want 4", st.puts)
	}
}

func TestRejectedAndNoopOperationsDoNotWrite(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	j := Open(ctx, st, nil)

	if _, err := j.Add(ctx, "", 10, model.Income); !errors.Is(err, ledger.ErrEmptyDescription) {
		t.Fatalf("err = %v, want ErrEmptyDescription", err)
	}
	if _, err := j.AddRaw(ctx, "desc", "-5", "Income"); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	if _, ok, err := j.RemoveAt(ctx, 3); ok || err != nil {
		t.Fatalf("RemoveAt(3) = %v, %v; want false, nil", ok, err)
	}
	if st.puts != 0 {
		t.Fatalf("puts = %d, want 0", st.puts)
	}
}

func TestReopenRestoresLedger(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	j := Open(ctx, st, nil)
	_, _ = j.Add(ctx, "Rent", 800, model.Fixed)
	_, _ = j.Add(ctx, "Salary", 2000, model.Income)

	again := Open(ctx, st, nil)
	want := j.Entries()
	got := again.Entries()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPersistFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	j := Open(ctx, st, nil)

	st.failPut = errors.New("read-only fs")
	_, err := j.Add(ctx, "Rent", 800, model.Fixed)
	if err == nil {
		t.Fatal("Add succeeded despite failing store")
	}
	if j.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (in-memory ledger is authoritative)", j.Len())
	}

	st.failPut = nil
	if _, err := j.Add(ctx, "Salary", 2000, model.Income); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if again := Open(ctx, st, nil); again.Len() != 2 {
		t.Fatalf("reopened Len = %d, want 2", again.Len())
	}
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	j := Open(ctx, st, nil)
	_, _ = j.Add(ctx, "Old", 1, model.Variable)

	n, err := j.Import(ctx, []byte(`[{"desc":"Nómina","amount":1500,"category":"Ingreso"}]`))
	if err != nil || n != 1 {
		t.Fatalf("Import = %d, %v", n, err)
	}
	if e := j.Entries(); len(e) != 1 || e[0].Category != model.Income {
		t.Fatalf("entries = %+v", e)
	}

	puts := st.puts
	if _, err := j.Import(ctx, []byte(`[{"bad":"shape"}]`)); err == nil {
		t.Fatal("Import accepted malformed payload")
	}
	if st.puts != puts || j.Len() != 1 {
		t.Fatalf("failed import changed state: puts %d->%d, len %d", puts, st.puts, j.Len())
	}
}
